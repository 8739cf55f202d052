package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/attendance"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/employee"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/report"
	"github.com/Jaganbehera1/Worker-Management-System/internal/pkg/database"
	"github.com/Jaganbehera1/Worker-Management-System/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	att := attendance.Attendance{
		ID:           uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		Date:         date,
		Present:      req.Present,
		CustomAmount: req.CustomAmount,
	}
	if req.CustomType != nil {
		ct := attendance.CustomType(*req.CustomType)
		att.CustomType = &ct
	}

	created, err := s.attendanceRepo.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return MapToResponse(created), nil
}

func (s *AttendanceServiceImpl) RecordBulk(ctx context.Context, req attendance.BulkRecordAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	var created []attendance.Attendance
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for _, entry := range req.Entries {
			if _, err := s.employeeRepo.GetByID(txCtx, entry.EmployeeID); err != nil {
				return fmt.Errorf("employee %s: %w", entry.EmployeeID, err)
			}

			att := attendance.Attendance{
				ID:           uuid.NewString(),
				EmployeeID:   entry.EmployeeID,
				Date:         date,
				Present:      entry.Present,
				CustomAmount: entry.CustomAmount,
			}
			if entry.CustomType != nil {
				ct := attendance.CustomType(*entry.CustomType)
				att.CustomType = &ct
			}

			rec, err := s.attendanceRepo.Create(txCtx, att)
			if err != nil {
				return err
			}
			created = append(created, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(created))
	for _, att := range created {
		result = append(result, MapToResponse(att))
	}
	return result, nil
}

func (s *AttendanceServiceImpl) ListByMonth(ctx context.Context, employeeID string, month string) ([]attendance.AttendanceResponse, error) {
	m, err := report.ParseMonth(month)
	if err != nil {
		return nil, report.ErrInvalidMonth
	}

	records, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, m.Start(), m.End())
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		result = append(result, MapToResponse(att))
	}

	return result, nil
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// MapToResponse converts an attendance record to its wire form. Shared
// with the report service, which embeds attendance detail lists.
func MapToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		Date:         att.Date.Format("2006-01-02"),
		Present:      att.Present,
		CustomAmount: att.CustomAmount,
	}
	if att.CustomType != nil {
		ct := string(*att.CustomType)
		resp.CustomType = &ct
	}
	return resp
}
