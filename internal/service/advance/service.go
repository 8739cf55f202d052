package advance

import (
	"context"
	"time"

	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/advance"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/employee"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/report"
	"github.com/google/uuid"
)

type AdvanceServiceImpl struct {
	advanceRepo  advance.AdvanceRepository
	employeeRepo employee.EmployeeRepository
}

func NewAdvanceService(
	advanceRepo advance.AdvanceRepository,
	employeeRepo employee.EmployeeRepository,
) advance.AdvanceService {
	return &AdvanceServiceImpl{
		advanceRepo:  advanceRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *AdvanceServiceImpl) Give(ctx context.Context, req advance.GiveAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return advance.AdvanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	adv := advance.Advance{
		ID:          uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		Date:        date,
		Amount:      req.Amount,
		Description: req.Description,
	}

	created, err := s.advanceRepo.Create(ctx, adv)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return MapToResponse(created), nil
}

func (s *AdvanceServiceImpl) ListByMonth(ctx context.Context, employeeID string, month string) ([]advance.AdvanceResponse, error) {
	m, err := report.ParseMonth(month)
	if err != nil {
		return nil, report.ErrInvalidMonth
	}

	advances, err := s.advanceRepo.ListByEmployeeAndRange(ctx, employeeID, m.Start(), m.End())
	if err != nil {
		return nil, err
	}

	result := make([]advance.AdvanceResponse, 0, len(advances))
	for _, adv := range advances {
		result = append(result, MapToResponse(adv))
	}

	return result, nil
}

func (s *AdvanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.advanceRepo.Delete(ctx, id)
}

// MapToResponse converts an advance to its wire form.
func MapToResponse(adv advance.Advance) advance.AdvanceResponse {
	return advance.AdvanceResponse{
		ID:          adv.ID,
		EmployeeID:  adv.EmployeeID,
		Date:        adv.Date.Format("2006-01-02"),
		Amount:      adv.Amount,
		Description: adv.Description,
	}
}
