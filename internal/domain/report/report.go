package report

import (
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/advance"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/attendance"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/employee"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/payment"
	"github.com/shopspring/decimal"
)

// MonthlyReport is the reconciled view of one employee's month. It is
// derived on demand from the ledgers and never stored.
type MonthlyReport struct {
	EmployeeID string
	Month      Month

	TotalDaysWorked    int
	BaseWages          decimal.Decimal
	AdditionalEarnings decimal.Decimal
	TotalWagesEarned   decimal.Decimal
	TotalAdvancesTaken decimal.Decimal
	TotalSalaryPaid    decimal.Decimal
	FinalAmount        decimal.Decimal

	Attendance []attendance.Attendance
	Advances   []advance.Advance
	Payments   []payment.Payment

	// Attendance partitioned by custom adjustment. Records with no tag
	// appear in none of the three, only in Attendance.
	OvertimeRecords      []attendance.Attendance
	HalfDayRecords       []attendance.Attendance
	CustomPaymentRecords []attendance.Attendance
}

// Inputs are the ledgers a report is reduced from. They may span any set
// of employees and dates; Compute filters them itself. A payment ledger
// that has not loaded yet is passed as a nil slice.
type Inputs struct {
	Attendance []attendance.Attendance
	Advances   []advance.Advance
	Payments   []payment.Payment
}

// Compute reduces the ledgers to the employee's monthly report.
//
// Base wages are folded once per present day rather than multiplied, so a
// per-day rate would reduce through the same loop. Custom amounts count
// toward additional earnings whether or not the record marks presence.
// Compute reads its inputs and nothing else; calling it repeatedly with
// the same inputs yields the same report.
func Compute(emp employee.Employee, m Month, in Inputs) MonthlyReport {
	r := MonthlyReport{
		EmployeeID:         emp.ID,
		Month:              m,
		BaseWages:          decimal.Zero,
		AdditionalEarnings: decimal.Zero,
		TotalAdvancesTaken: decimal.Zero,
		TotalSalaryPaid:    decimal.Zero,
	}

	for _, att := range in.Attendance {
		if att.EmployeeID != emp.ID || !m.Contains(att.Date) {
			continue
		}
		r.Attendance = append(r.Attendance, att)

		if att.Present {
			r.TotalDaysWorked++
			r.BaseWages = r.BaseWages.Add(emp.DailyWage)
		}
		if att.CustomAmount != nil {
			r.AdditionalEarnings = r.AdditionalEarnings.Add(*att.CustomAmount)
		}
		if att.CustomType != nil {
			switch *att.CustomType {
			case attendance.CustomTypeOvertime:
				r.OvertimeRecords = append(r.OvertimeRecords, att)
			case attendance.CustomTypeHalfDay:
				r.HalfDayRecords = append(r.HalfDayRecords, att)
			case attendance.CustomTypeCustomPayment:
				r.CustomPaymentRecords = append(r.CustomPaymentRecords, att)
			}
		}
	}

	for _, adv := range in.Advances {
		if adv.EmployeeID != emp.ID || !m.Contains(adv.Date) {
			continue
		}
		r.Advances = append(r.Advances, adv)
		r.TotalAdvancesTaken = r.TotalAdvancesTaken.Add(adv.Amount)
	}

	for _, pay := range in.Payments {
		if pay.EmployeeID != emp.ID || !m.Contains(pay.Date) {
			continue
		}
		r.Payments = append(r.Payments, pay)
		r.TotalSalaryPaid = r.TotalSalaryPaid.Add(pay.Amount)
	}

	r.TotalWagesEarned = r.BaseWages.Add(r.AdditionalEarnings)
	r.FinalAmount = r.TotalWagesEarned.Sub(r.TotalAdvancesTaken).Sub(r.TotalSalaryPaid)

	return r
}
