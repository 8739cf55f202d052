package employee

import (
	"context"
	"io"
)

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	// List returns employees whose name or designation matches search;
	// an empty search returns everyone.
	List(ctx context.Context, search string) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	UploadPhoto(ctx context.Context, id string, file io.Reader, filename string, contentType string) (EmployeeResponse, error)
}
