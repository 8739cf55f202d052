package payment

import (
	"context"
	"time"
)

type PaymentRepository interface {
	Create(ctx context.Context, pay Payment) (Payment, error)
	GetByID(ctx context.Context, id string) (Payment, error)
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Payment, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]Payment, error)
	Delete(ctx context.Context, id string) error
}
