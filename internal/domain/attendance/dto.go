package attendance

import (
	"fmt"

	"github.com/Jaganbehera1/Worker-Management-System/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RecordAttendanceRequest struct {
	EmployeeID   string           `json:"-"`
	Date         string           `json:"date"`
	Present      bool             `json:"present"`
	CustomType   *string          `json:"custom_type,omitempty"`
	CustomAmount *decimal.Decimal `json:"custom_amount,omitempty"`
}

func (r *RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if r.CustomType != nil && !CustomType(*r.CustomType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "custom_type", Message: "must be overtime, half_day or custom_payment"})
	}
	if r.CustomType != nil && r.CustomAmount == nil {
		errs = append(errs, validator.ValidationError{Field: "custom_amount", Message: "is required when custom_type is set"})
	}
	if r.CustomAmount != nil && r.CustomAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "custom_amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkRecordEntry is one employee's mark inside a bulk request.
type BulkRecordEntry struct {
	EmployeeID   string           `json:"employee_id"`
	Present      bool             `json:"present"`
	CustomType   *string          `json:"custom_type,omitempty"`
	CustomAmount *decimal.Decimal `json:"custom_amount,omitempty"`
}

// BulkRecordAttendanceRequest marks many employees for a single date.
// Entries commit together or not at all.
type BulkRecordAttendanceRequest struct {
	Date    string            `json:"date"`
	Entries []BulkRecordEntry `json:"entries"`
}

func (r *BulkRecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{Field: "entries", Message: "must not be empty"})
	}
	for i, e := range r.Entries {
		if validator.IsEmpty(e.EmployeeID) {
			errs = append(errs, validator.ValidationError{Field: fmt.Sprintf("entries[%d].employee_id", i), Message: "is required"})
		}
		if e.CustomType != nil && !CustomType(*e.CustomType).Valid() {
			errs = append(errs, validator.ValidationError{Field: fmt.Sprintf("entries[%d].custom_type", i), Message: "must be overtime, half_day or custom_payment"})
		}
		if e.CustomType != nil && e.CustomAmount == nil {
			errs = append(errs, validator.ValidationError{Field: fmt.Sprintf("entries[%d].custom_amount", i), Message: "is required when custom_type is set"})
		}
		if e.CustomAmount != nil && e.CustomAmount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: fmt.Sprintf("entries[%d].custom_amount", i), Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string           `json:"id"`
	EmployeeID   string           `json:"employee_id"`
	Date         string           `json:"date"`
	Present      bool             `json:"present"`
	CustomType   *string          `json:"custom_type,omitempty"`
	CustomAmount *decimal.Decimal `json:"custom_amount,omitempty"`
}
