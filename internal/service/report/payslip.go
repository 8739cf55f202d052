package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/attendance"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/employee"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/report"
	"github.com/Jaganbehera1/Worker-Management-System/internal/pkg/currency"
	"github.com/shopspring/decimal"
)

const (
	payslipWidth = 46
	longDate     = "2 January 2006"
)

// BuildPayslip renders the fixed-layout plain-text payslip for one
// employee's month. It only builds a string; handing the result to the
// client as a download is the HTTP layer's job.
func BuildPayslip(emp employee.Employee, rep report.MonthlyReport) string {
	var b strings.Builder
	rule := strings.Repeat("=", payslipWidth)
	thin := strings.Repeat("-", payslipWidth)
	monthTitle := time.Date(rep.Month.Year, rep.Month.Month, 1, 0, 0, 0, 0, time.Local).Format("January 2006")

	b.WriteString(rule + "\n")
	b.WriteString(center("PAYSLIP") + "\n")
	b.WriteString(center(monthTitle) + "\n")
	b.WriteString(rule + "\n")
	writeField(&b, "Employee", emp.Name)
	writeField(&b, "Designation", emp.Designation)
	writeField(&b, "Daily wage", currency.Format(emp.DailyWage))
	b.WriteString(thin + "\n")

	b.WriteString("EARNINGS\n")
	writeField(&b, "Days worked", fmt.Sprintf("%d", rep.TotalDaysWorked))
	writeField(&b, "Base wages", currency.Format(rep.BaseWages))
	if len(rep.OvertimeRecords) > 0 {
		writeField(&b, "Overtime", currency.Format(sumCustom(rep.OvertimeRecords)))
	}
	if len(rep.HalfDayRecords) > 0 {
		writeField(&b, "Half-day", currency.Format(sumCustom(rep.HalfDayRecords)))
	}
	if len(rep.CustomPaymentRecords) > 0 {
		writeField(&b, "Custom payments", currency.Format(sumCustom(rep.CustomPaymentRecords)))
	}
	writeField(&b, "Total earned", currency.Format(rep.TotalWagesEarned))
	b.WriteString(thin + "\n")

	b.WriteString("DEDUCTIONS\n")
	writeField(&b, "Advances taken", currency.Format(rep.TotalAdvancesTaken))
	writeField(&b, "Salary paid", currency.Format(rep.TotalSalaryPaid))
	b.WriteString(thin + "\n")

	writeField(&b, "FINAL BALANCE", currency.FormatBalance(rep.FinalAmount))
	b.WriteString(rule + "\n")

	b.WriteString("\nATTENDANCE\n")
	if len(rep.Attendance) == 0 {
		b.WriteString("  No records\n")
	}
	for _, att := range rep.Attendance {
		b.WriteString("  " + attendanceLine(att) + "\n")
	}

	b.WriteString("\nADVANCES\n")
	if len(rep.Advances) == 0 {
		b.WriteString("  No records\n")
	}
	for _, adv := range rep.Advances {
		b.WriteString(fmt.Sprintf("  %s - %s - %s\n", adv.Date.Format(longDate), currency.Format(adv.Amount), adv.Description))
	}

	b.WriteString("\nPAYMENTS\n")
	if len(rep.Payments) == 0 {
		b.WriteString("  No records\n")
	}
	for _, pay := range rep.Payments {
		b.WriteString(fmt.Sprintf("  %s - %s - %s\n", pay.Date.Format(longDate), currency.Format(pay.Amount), pay.Description))
	}

	return b.String()
}

func attendanceLine(att attendance.Attendance) string {
	status := "Absent"
	if att.Present {
		status = "Present"
	}
	line := att.Date.Format(longDate) + " - " + status
	if att.CustomType != nil && att.CustomAmount != nil {
		line += fmt.Sprintf(" (%s %s)", customLabel(*att.CustomType), currency.Format(*att.CustomAmount))
	} else if att.CustomAmount != nil {
		line += fmt.Sprintf(" (extra %s)", currency.Format(*att.CustomAmount))
	}
	return line
}

func customLabel(ct attendance.CustomType) string {
	switch ct {
	case attendance.CustomTypeOvertime:
		return "overtime"
	case attendance.CustomTypeHalfDay:
		return "half-day"
	case attendance.CustomTypeCustomPayment:
		return "custom"
	}
	return string(ct)
}

func sumCustom(records []attendance.Attendance) decimal.Decimal {
	total := decimal.Zero
	for _, att := range records {
		if att.CustomAmount != nil {
			total = total.Add(*att.CustomAmount)
		}
	}
	return total
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-18s: %s\n", label, value)
}

func center(s string) string {
	if len(s) >= payslipWidth {
		return s
	}
	pad := (payslipWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
