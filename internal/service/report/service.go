package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/advance"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/attendance"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/employee"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/payment"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/report"
	"github.com/Jaganbehera1/Worker-Management-System/internal/pkg/currency"
	advanceService "github.com/Jaganbehera1/Worker-Management-System/internal/service/advance"
	attendanceService "github.com/Jaganbehera1/Worker-Management-System/internal/service/attendance"
	paymentService "github.com/Jaganbehera1/Worker-Management-System/internal/service/payment"
)

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	advanceRepo    advance.AdvanceRepository
	paymentRepo    payment.PaymentRepository
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	advanceRepo advance.AdvanceRepository,
	paymentRepo payment.PaymentRepository,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		advanceRepo:    advanceRepo,
		paymentRepo:    paymentRepo,
	}
}

func (s *ReportServiceImpl) GetMonthlyReport(ctx context.Context, employeeID string, m report.Month) (report.MonthlyReportResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}

	in, paymentsAvailable, err := s.loadEmployeeLedgers(ctx, employeeID, m)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}

	rep := report.Compute(emp, m, in)

	return mapToReportResponse(emp, rep, paymentsAvailable), nil
}

func (s *ReportServiceImpl) GetMonthlySummary(ctx context.Context, m report.Month) (report.MonthlySummaryResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.MonthlySummaryResponse{}, err
	}

	atts, err := s.attendanceRepo.ListByRange(ctx, m.Start(), m.End())
	if err != nil {
		return report.MonthlySummaryResponse{}, fmt.Errorf("failed to load attendance: %w", err)
	}
	advs, err := s.advanceRepo.ListByRange(ctx, m.Start(), m.End())
	if err != nil {
		return report.MonthlySummaryResponse{}, fmt.Errorf("failed to load advances: %w", err)
	}

	pays, paymentsAvailable, err := s.tolerateUnavailable(
		s.paymentRepo.ListByRange(ctx, m.Start(), m.End()),
	)
	if err != nil {
		return report.MonthlySummaryResponse{}, err
	}

	in := report.Inputs{Attendance: atts, Advances: advs, Payments: pays}

	resp := report.MonthlySummaryResponse{
		Month:             m.String(),
		PaymentsAvailable: paymentsAvailable,
		Employees:         make([]report.EmployeeMonthlySummary, 0, len(employees)),
	}
	for _, emp := range employees {
		rep := report.Compute(emp, m, in)
		resp.Employees = append(resp.Employees, report.EmployeeMonthlySummary{
			Employee:         mapEmployee(emp),
			Month:            m.String(),
			TotalDaysWorked:  rep.TotalDaysWorked,
			TotalWagesEarned: rep.TotalWagesEarned,
			FinalAmount:      rep.FinalAmount,
			BalanceDisplay:   currency.FormatBalance(rep.FinalAmount),
		})
	}

	return resp, nil
}

func (s *ReportServiceImpl) ExportPayslip(ctx context.Context, employeeID string, m report.Month) (report.PayslipExport, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return report.PayslipExport{}, err
	}

	in, _, err := s.loadEmployeeLedgers(ctx, employeeID, m)
	if err != nil {
		return report.PayslipExport{}, err
	}

	rep := report.Compute(emp, m, in)

	return report.PayslipExport{
		Filename: payslipFilename(emp.Name, m),
		Content:  BuildPayslip(emp, rep),
	}, nil
}

func (s *ReportServiceImpl) loadEmployeeLedgers(ctx context.Context, employeeID string, m report.Month) (report.Inputs, bool, error) {
	atts, err := s.attendanceRepo.ListByEmployeeAndRange(ctx, employeeID, m.Start(), m.End())
	if err != nil {
		return report.Inputs{}, false, fmt.Errorf("failed to load attendance: %w", err)
	}

	advs, err := s.advanceRepo.ListByEmployeeAndRange(ctx, employeeID, m.Start(), m.End())
	if err != nil {
		return report.Inputs{}, false, fmt.Errorf("failed to load advances: %w", err)
	}

	pays, paymentsAvailable, err := s.tolerateUnavailable(
		s.paymentRepo.ListByEmployeeAndRange(ctx, employeeID, m.Start(), m.End()),
	)
	if err != nil {
		return report.Inputs{}, false, err
	}

	return report.Inputs{Attendance: atts, Advances: advs, Payments: pays}, paymentsAvailable, nil
}

// tolerateUnavailable turns an unreachable payment store into an empty
// ledger. The report still computes; the response just flags that paid
// totals may be under-reported until the store is back.
func (s *ReportServiceImpl) tolerateUnavailable(pays []payment.Payment, err error) ([]payment.Payment, bool, error) {
	if err != nil {
		if errors.Is(err, payment.ErrStoreUnavailable) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load salary payments: %w", err)
	}
	return pays, true, nil
}

func mapToReportResponse(emp employee.Employee, rep report.MonthlyReport, paymentsAvailable bool) report.MonthlyReportResponse {
	resp := report.MonthlyReportResponse{
		Employee:           mapEmployee(emp),
		Month:              rep.Month.String(),
		TotalDaysWorked:    rep.TotalDaysWorked,
		BaseWages:          rep.BaseWages,
		AdditionalEarnings: rep.AdditionalEarnings,
		TotalWagesEarned:   rep.TotalWagesEarned,
		TotalAdvancesTaken: rep.TotalAdvancesTaken,
		TotalSalaryPaid:    rep.TotalSalaryPaid,
		FinalAmount:        rep.FinalAmount,
		BalanceDisplay:     currency.FormatBalance(rep.FinalAmount),
		PaymentsAvailable:  paymentsAvailable,
		Attendance:         make([]attendance.AttendanceResponse, 0, len(rep.Attendance)),
		Advances:           make([]advance.AdvanceResponse, 0, len(rep.Advances)),
		Payments:           make([]payment.PaymentResponse, 0, len(rep.Payments)),
	}

	for _, att := range rep.Attendance {
		resp.Attendance = append(resp.Attendance, attendanceService.MapToResponse(att))
	}
	for _, adv := range rep.Advances {
		resp.Advances = append(resp.Advances, advanceService.MapToResponse(adv))
	}
	for _, pay := range rep.Payments {
		resp.Payments = append(resp.Payments, paymentService.MapToResponse(pay))
	}
	for _, att := range rep.OvertimeRecords {
		resp.OvertimeRecords = append(resp.OvertimeRecords, attendanceService.MapToResponse(att))
	}
	for _, att := range rep.HalfDayRecords {
		resp.HalfDayRecords = append(resp.HalfDayRecords, attendanceService.MapToResponse(att))
	}
	for _, att := range rep.CustomPaymentRecords {
		resp.CustomPaymentRecords = append(resp.CustomPaymentRecords, attendanceService.MapToResponse(att))
	}

	return resp
}

func mapEmployee(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:          emp.ID,
		Name:        emp.Name,
		Designation: emp.Designation,
		DailyWage:   emp.DailyWage,
		PhoneNumber: emp.PhoneNumber,
		PhotoURL:    emp.PhotoURL,
	}
}

func payslipFilename(employeeName string, m report.Month) string {
	name := strings.ReplaceAll(employeeName, "/", "-")
	return fmt.Sprintf("%s_%s_payslip.txt", name, m.String())
}
