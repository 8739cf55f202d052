package advance

import (
	"context"
	"time"
)

type AdvanceRepository interface {
	Create(ctx context.Context, adv Advance) (Advance, error)
	GetByID(ctx context.Context, id string) (Advance, error)
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Advance, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]Advance, error)
	Delete(ctx context.Context, id string) error
}
