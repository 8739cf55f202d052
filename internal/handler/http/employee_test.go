package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/employee"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	getCalls int
	deleted  []string
}

func (f *fakeEmployeeService) Create(_ context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{ID: "created", Name: req.Name}, nil
}

func (f *fakeEmployeeService) Get(_ context.Context, id string) (employee.EmployeeResponse, error) {
	f.getCalls++
	return employee.EmployeeResponse{ID: id, Name: "Ramesh Kumar", DailyWage: decimal.NewFromInt(500)}, nil
}

func (f *fakeEmployeeService) List(_ context.Context, search string) ([]employee.EmployeeResponse, error) {
	return nil, nil
}

func (f *fakeEmployeeService) Update(_ context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{ID: req.ID}, nil
}

func (f *fakeEmployeeService) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeEmployeeService) UploadPhoto(_ context.Context, id string, file io.Reader, filename string, contentType string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{ID: id}, nil
}

func employeeTestRouter(svc employee.EmployeeService) (*chi.Mux, *fakeEmployeeService) {
	fake := svc.(*fakeEmployeeService)
	h := NewEmployeeHandler(svc)
	r := chi.NewRouter()
	r.Get("/employees/{id}", h.Get)
	r.Delete("/employees/{id}", h.Delete)
	return r, fake
}

func TestGetEmployeeHandler(t *testing.T) {
	r, fake := employeeTestRouter(&fakeEmployeeService{})

	req := httptest.NewRequest(http.MethodGet, "/employees/4c2f1a9e-0f3d-4c6a-9b1e-2a7d8e5f1b3c", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, fake.getCalls)
}

func TestGetEmployeeHandler_MalformedID(t *testing.T) {
	r, fake := employeeTestRouter(&fakeEmployeeService{})

	// A non-UUID id is rejected before it reaches the service.
	req := httptest.NewRequest(http.MethodGet, "/employees/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, fake.getCalls)
}

func TestDeleteEmployeeHandler_MalformedID(t *testing.T) {
	r, fake := employeeTestRouter(&fakeEmployeeService{})

	req := httptest.NewRequest(http.MethodDelete, "/employees/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, fake.deleted)
}
