package currency

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"0", "₹0"},
		{"500", "₹500"},
		{"3300", "₹3,300"},
		{"10000", "₹10,000"},
		{"100000", "₹1,00,000"},  // lakh grouping
		{"1234567", "₹12,34,567"},
		{"10000000", "₹1,00,00,000"}, // crore grouping
		{"3300.50", "₹3,300.50"},
		{"99.99", "₹99.99"},
		{"-2000", "-₹2,000"},
		// Paise that round up to a whole rupee must carry.
		{"99.999", "₹100"},
		{"0.999", "₹1"},
		{"-99.999", "-₹100"},
		{"1.005", "₹1.01"},
		{"3300.004", "₹3,300"},
	}

	for _, c := range cases {
		d := decimal.RequireFromString(c.amount)
		if got := Format(d); got != c.want {
			t.Errorf("Format(%s) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestFormatBalance(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		// Zero is shown bare: the month is fully settled.
		{"0", "₹0"},
		// Any non-zero balance carries a "+" and its magnitude only.
		{"3300", "+₹3,300"},
		{"-3300", "+₹3,300"},
		{"0.01", "+₹0.01"},
		{"100000", "+₹1,00,000"},
		{"99.999", "+₹100"},
	}

	for _, c := range cases {
		d := decimal.RequireFromString(c.amount)
		if got := FormatBalance(d); got != c.want {
			t.Errorf("FormatBalance(%s) = %q, want %q", c.amount, got, c.want)
		}
	}
}
