package report

import (
	"strings"
	"testing"
	"time"

	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/advance"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/attendance"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/employee"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func payslipEmployee() employee.Employee {
	return employee.Employee{
		ID:          testEmployeeID,
		Name:        "Ramesh Kumar",
		Designation: "Mason",
		DailyWage:   decimal.NewFromInt(500),
	}
}

func payslipReport() report.MonthlyReport {
	emp := payslipEmployee()
	m := report.Month{Year: 2024, Month: time.March}

	var in report.Inputs
	for day := 1; day <= 20; day++ {
		in.Attendance = append(in.Attendance, attendance.Attendance{
			EmployeeID: testEmployeeID, Date: march(day), Present: true,
		})
	}
	ot := attendance.CustomTypeOvertime
	amt := decimal.NewFromInt(300)
	in.Attendance = append(in.Attendance, attendance.Attendance{
		EmployeeID: testEmployeeID, Date: march(21), CustomType: &ot, CustomAmount: &amt,
	})
	in.Advances = []advance.Advance{
		{EmployeeID: testEmployeeID, Date: march(5), Amount: decimal.NewFromInt(2000), Description: "medical"},
	}

	return report.Compute(emp, m, in)
}

func TestBuildPayslip(t *testing.T) {
	content := BuildPayslip(payslipEmployee(), payslipReport())
	lines := strings.Split(content, "\n")

	assert.Equal(t, strings.Repeat("=", 46), lines[0])
	assert.Equal(t, strings.TrimSpace(lines[1]), "PAYSLIP")
	assert.Equal(t, strings.TrimSpace(lines[2]), "March 2024")

	assert.Contains(t, content, "Employee          : Ramesh Kumar")
	assert.Contains(t, content, "Designation       : Mason")
	assert.Contains(t, content, "Daily wage        : ₹500")
	assert.Contains(t, content, "Days worked       : 20")
	assert.Contains(t, content, "Base wages        : ₹10,000")
	assert.Contains(t, content, "Overtime          : ₹300")
	assert.Contains(t, content, "Total earned      : ₹10,300")
	assert.Contains(t, content, "Advances taken    : ₹2,000")
	assert.Contains(t, content, "Salary paid       : ₹0")
	assert.Contains(t, content, "FINAL BALANCE     : +₹8,300")

	assert.Contains(t, content, "5 March 2024 - ₹2,000 - medical")
	assert.Contains(t, content, "21 March 2024 - Absent (overtime ₹300)")
}

func TestBuildPayslip_OmitsEmptySections(t *testing.T) {
	emp := payslipEmployee()
	m := report.Month{Year: 2024, Month: time.March}
	rep := report.Compute(emp, m, report.Inputs{})

	content := BuildPayslip(emp, rep)

	// Sub-lines for adjustments only render when records exist.
	assert.NotContains(t, content, "Overtime")
	assert.NotContains(t, content, "Half-day")
	assert.NotContains(t, content, "Custom payments")

	assert.Contains(t, content, "FINAL BALANCE     : ₹0")
	assert.Contains(t, content, "ATTENDANCE\n  No records")
	assert.Contains(t, content, "ADVANCES\n  No records")
	assert.Contains(t, content, "PAYMENTS\n  No records")
}

func TestBuildPayslip_HalfDayAndCustom(t *testing.T) {
	emp := payslipEmployee()
	m := report.Month{Year: 2024, Month: time.March}

	hd := attendance.CustomTypeHalfDay
	cp := attendance.CustomTypeCustomPayment
	hdAmt := decimal.NewFromInt(250)
	cpAmt := decimal.NewFromInt(1000)
	in := report.Inputs{Attendance: []attendance.Attendance{
		{EmployeeID: testEmployeeID, Date: march(1), Present: true, CustomType: &hd, CustomAmount: &hdAmt},
		{EmployeeID: testEmployeeID, Date: march(2), Present: false, CustomType: &cp, CustomAmount: &cpAmt},
	}}

	content := BuildPayslip(emp, report.Compute(emp, m, in))

	assert.Contains(t, content, "Half-day          : ₹250")
	assert.Contains(t, content, "Custom payments   : ₹1,000")
	assert.Contains(t, content, "1 March 2024 - Present (half-day ₹250)")
	assert.Contains(t, content, "2 March 2024 - Absent (custom ₹1,000)")
}
