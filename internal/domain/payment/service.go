package payment

import "context"

type PaymentService interface {
	Record(ctx context.Context, req RecordPaymentRequest) (PaymentResponse, error)
	ListByMonth(ctx context.Context, employeeID string, month string) ([]PaymentResponse, error)
	Delete(ctx context.Context, id string) error
}
