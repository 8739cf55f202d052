package report

import (
	"fmt"
	"time"
)

// Month is a calendar month at year+month granularity, the unit every
// report is keyed by. The wire form is "YYYY-MM".
type Month struct {
	Year  int
	Month time.Month
}

func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Start is local midnight on the first calendar day of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local)
}

// End is the last calendar day of the month, computed as day 0 of the
// next month. The range [Start, End] is inclusive on both ends.
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, -1)
}

// Contains reports whether the calendar date of t falls inside the month.
// Only the date matters; any time-of-day component is dropped first.
func (m Month) Contains(t time.Time) bool {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	return !d.Before(m.Start()) && !d.After(m.End())
}
