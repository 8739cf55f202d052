package employee

import (
	"testing"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func TestCreateEmployeeRequestValidate(t *testing.T) {
	cases := []struct {
		name    string
		req     CreateEmployeeRequest
		wantErr bool
	}{
		{"minimal", CreateEmployeeRequest{Name: "Ramesh Kumar", Designation: "Mason", DailyWage: decimal.NewFromInt(500)}, false},
		{"with phone", CreateEmployeeRequest{Name: "Ramesh Kumar", Designation: "Mason", DailyWage: decimal.NewFromInt(500), PhoneNumber: strPtr("9876543210")}, false},
		{"phone with country code", CreateEmployeeRequest{Name: "Ramesh Kumar", Designation: "Mason", DailyWage: decimal.NewFromInt(500), PhoneNumber: strPtr("+91 98765 43210")}, false},
		{"missing name", CreateEmployeeRequest{Designation: "Mason", DailyWage: decimal.NewFromInt(500)}, true},
		{"missing designation", CreateEmployeeRequest{Name: "Ramesh Kumar", DailyWage: decimal.NewFromInt(500)}, true},
		{"negative wage", CreateEmployeeRequest{Name: "Ramesh Kumar", Designation: "Mason", DailyWage: decimal.NewFromInt(-1)}, true},
		{"bad phone", CreateEmployeeRequest{Name: "Ramesh Kumar", Designation: "Mason", DailyWage: decimal.NewFromInt(500), PhoneNumber: strPtr("12345")}, true},
		{"landline-like phone", CreateEmployeeRequest{Name: "Ramesh Kumar", Designation: "Mason", DailyWage: decimal.NewFromInt(500), PhoneNumber: strPtr("1234567890")}, true},
	}

	for _, c := range cases {
		err := c.req.Validate()
		if (err != nil) != c.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", c.name, err, c.wantErr)
		}
	}
}

func TestUpdateEmployeeRequestValidate(t *testing.T) {
	wage := decimal.NewFromInt(550)
	negWage := decimal.NewFromInt(-1)

	cases := []struct {
		name    string
		req     UpdateEmployeeRequest
		wantErr bool
	}{
		{"empty patch", UpdateEmployeeRequest{ID: "emp-1"}, false},
		{"wage only", UpdateEmployeeRequest{ID: "emp-1", DailyWage: &wage}, false},
		{"valid phone", UpdateEmployeeRequest{ID: "emp-1", PhoneNumber: strPtr("09876543210")}, false},
		{"blank name", UpdateEmployeeRequest{ID: "emp-1", Name: strPtr("  ")}, true},
		{"negative wage", UpdateEmployeeRequest{ID: "emp-1", DailyWage: &negWage}, true},
		{"bad phone", UpdateEmployeeRequest{ID: "emp-1", PhoneNumber: strPtr("not-a-number")}, true},
	}

	for _, c := range cases {
		err := c.req.Validate()
		if (err != nil) != c.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", c.name, err, c.wantErr)
		}
	}
}
