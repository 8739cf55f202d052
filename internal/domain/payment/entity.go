package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is salary already paid out to an employee. Payments live in a
// store owned separately from the other ledgers and may be unreachable
// while the rest of the system is healthy.
type Payment struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
