package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func strPtr(s string) *string { return &s }

func TestRecordAttendanceRequestValidate(t *testing.T) {
	amt := decimal.NewFromInt(300)
	neg := decimal.NewFromInt(-1)

	cases := []struct {
		name    string
		req     RecordAttendanceRequest
		wantErr bool
	}{
		{"present day", RecordAttendanceRequest{Date: "2024-03-01", Present: true}, false},
		{"absent day", RecordAttendanceRequest{Date: "2024-03-01"}, false},
		{"overtime", RecordAttendanceRequest{Date: "2024-03-01", CustomType: strPtr("overtime"), CustomAmount: &amt}, false},
		{"half day", RecordAttendanceRequest{Date: "2024-03-01", CustomType: strPtr("half_day"), CustomAmount: &amt}, false},
		{"custom payment", RecordAttendanceRequest{Date: "2024-03-01", CustomType: strPtr("custom_payment"), CustomAmount: &amt}, false},
		{"bad date", RecordAttendanceRequest{Date: "01-03-2024"}, true},
		{"empty date", RecordAttendanceRequest{}, true},
		{"unknown custom type", RecordAttendanceRequest{Date: "2024-03-01", CustomType: strPtr("bonus"), CustomAmount: &amt}, true},
		{"custom type without amount", RecordAttendanceRequest{Date: "2024-03-01", CustomType: strPtr("overtime")}, true},
		{"negative amount", RecordAttendanceRequest{Date: "2024-03-01", CustomType: strPtr("overtime"), CustomAmount: &neg}, true},
	}

	for _, c := range cases {
		err := c.req.Validate()
		if (err != nil) != c.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", c.name, err, c.wantErr)
		}
	}
}

func TestCustomTypeValid(t *testing.T) {
	for _, ct := range []CustomType{CustomTypeOvertime, CustomTypeHalfDay, CustomTypeCustomPayment} {
		if !ct.Valid() {
			t.Errorf("%s.Valid() = false", ct)
		}
	}
	if CustomType("bonus").Valid() {
		t.Error(`CustomType("bonus").Valid() = true`)
	}
}
