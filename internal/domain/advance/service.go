package advance

import "context"

type AdvanceService interface {
	Give(ctx context.Context, req GiveAdvanceRequest) (AdvanceResponse, error)
	ListByMonth(ctx context.Context, employeeID string, month string) ([]AdvanceResponse, error)
	Delete(ctx context.Context, id string) error
}
