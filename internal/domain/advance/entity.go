package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance is cash handed to an employee ahead of settlement. It always
// reduces the final balance for the month it falls in.
type Advance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
