package payment

import (
	"context"
	"time"

	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/employee"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/payment"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/report"
	"github.com/google/uuid"
)

type PaymentServiceImpl struct {
	paymentRepo  payment.PaymentRepository
	employeeRepo employee.EmployeeRepository
}

func NewPaymentService(
	paymentRepo payment.PaymentRepository,
	employeeRepo employee.EmployeeRepository,
) payment.PaymentService {
	return &PaymentServiceImpl{
		paymentRepo:  paymentRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *PaymentServiceImpl) Record(ctx context.Context, req payment.RecordPaymentRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payment.PaymentResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	pay := payment.Payment{
		ID:          uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		Date:        date,
		Amount:      req.Amount,
		Description: req.Description,
	}

	created, err := s.paymentRepo.Create(ctx, pay)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	return MapToResponse(created), nil
}

func (s *PaymentServiceImpl) ListByMonth(ctx context.Context, employeeID string, month string) ([]payment.PaymentResponse, error) {
	m, err := report.ParseMonth(month)
	if err != nil {
		return nil, report.ErrInvalidMonth
	}

	payments, err := s.paymentRepo.ListByEmployeeAndRange(ctx, employeeID, m.Start(), m.End())
	if err != nil {
		return nil, err
	}

	result := make([]payment.PaymentResponse, 0, len(payments))
	for _, pay := range payments {
		result = append(result, MapToResponse(pay))
	}

	return result, nil
}

func (s *PaymentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.paymentRepo.Delete(ctx, id)
}

// MapToResponse converts a salary payment to its wire form.
func MapToResponse(pay payment.Payment) payment.PaymentResponse {
	return payment.PaymentResponse{
		ID:          pay.ID,
		EmployeeID:  pay.EmployeeID,
		Date:        pay.Date.Format("2006-01-02"),
		Amount:      pay.Amount,
		Description: pay.Description,
	}
}
