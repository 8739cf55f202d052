package report

import (
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/advance"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/attendance"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/employee"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/payment"
	"github.com/shopspring/decimal"
)

type MonthlyReportResponse struct {
	Employee employee.EmployeeResponse `json:"employee"`
	Month    string                    `json:"month"`

	TotalDaysWorked    int             `json:"total_days_worked"`
	BaseWages          decimal.Decimal `json:"base_wages"`
	AdditionalEarnings decimal.Decimal `json:"additional_earnings"`
	TotalWagesEarned   decimal.Decimal `json:"total_wages_earned"`
	TotalAdvancesTaken decimal.Decimal `json:"total_advances_taken"`
	TotalSalaryPaid    decimal.Decimal `json:"total_salary_paid"`
	FinalAmount        decimal.Decimal `json:"final_amount"`

	// BalanceDisplay is the product's sign rule applied to FinalAmount:
	// zero renders bare, anything else as "+" plus the magnitude.
	BalanceDisplay string `json:"balance_display"`

	// PaymentsAvailable is false when the payment store could not be
	// reached and TotalSalaryPaid was computed over an empty ledger.
	PaymentsAvailable bool `json:"payments_available"`

	Attendance []attendance.AttendanceResponse `json:"attendance"`
	Advances   []advance.AdvanceResponse       `json:"advances"`
	Payments   []payment.PaymentResponse       `json:"payments"`

	OvertimeRecords      []attendance.AttendanceResponse `json:"overtime_records,omitempty"`
	HalfDayRecords       []attendance.AttendanceResponse `json:"half_day_records,omitempty"`
	CustomPaymentRecords []attendance.AttendanceResponse `json:"custom_payment_records,omitempty"`
}

// EmployeeMonthlySummary backs one employee card in the month view.
type EmployeeMonthlySummary struct {
	Employee         employee.EmployeeResponse `json:"employee"`
	Month            string                    `json:"month"`
	TotalDaysWorked  int                       `json:"total_days_worked"`
	TotalWagesEarned decimal.Decimal           `json:"total_wages_earned"`
	FinalAmount      decimal.Decimal           `json:"final_amount"`
	BalanceDisplay   string                    `json:"balance_display"`
}

type MonthlySummaryResponse struct {
	Month             string                   `json:"month"`
	PaymentsAvailable bool                     `json:"payments_available"`
	Employees         []EmployeeMonthlySummary `json:"employees"`
}

// PayslipExport is a rendered payslip plus the filename the client should
// save it under.
type PayslipExport struct {
	Filename string
	Content  string
}
