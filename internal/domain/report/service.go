package report

import "context"

type ReportService interface {
	GetMonthlyReport(ctx context.Context, employeeID string, m Month) (MonthlyReportResponse, error)
	GetMonthlySummary(ctx context.Context, m Month) (MonthlySummaryResponse, error)
	ExportPayslip(ctx context.Context, employeeID string, m Month) (PayslipExport, error)
}
