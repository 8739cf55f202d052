package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomType tags an attendance record carrying an extra payment adjustment.
type CustomType string

const (
	CustomTypeOvertime      CustomType = "overtime"
	CustomTypeHalfDay       CustomType = "half_day"
	CustomTypeCustomPayment CustomType = "custom_payment"
)

func (c CustomType) Valid() bool {
	switch c {
	case CustomTypeOvertime, CustomTypeHalfDay, CustomTypeCustomPayment:
		return true
	}
	return false
}

// Attendance is one employee's record for one calendar date. A record with
// Present false and no custom amount contributes nothing to earnings.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	Present      bool
	CustomType   *CustomType
	CustomAmount *decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
