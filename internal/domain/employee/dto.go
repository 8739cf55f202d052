package employee

import (
	"github.com/Jaganbehera1/Worker-Management-System/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	Name        string          `json:"name"`
	Designation string          `json:"designation"`
	DailyWage   decimal.Decimal `json:"daily_wage"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "is required"})
	}
	if r.DailyWage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "daily_wage", Message: "must be non-negative"})
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "must be an Indian mobile number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string
	Name        *string          `json:"name,omitempty"`
	Designation *string          `json:"designation,omitempty"`
	DailyWage   *decimal.Decimal `json:"daily_wage,omitempty"`
	PhoneNumber *string          `json:"phone_number,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be blank"})
	}
	if r.Designation != nil && validator.IsEmpty(*r.Designation) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "must not be blank"})
	}
	if r.DailyWage != nil && r.DailyWage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "daily_wage", Message: "must be non-negative"})
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "must be an Indian mobile number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Designation string          `json:"designation"`
	DailyWage   decimal.Decimal `json:"daily_wage"`
	PhoneNumber *string         `json:"phone_number,omitempty"`
	PhotoURL    *string         `json:"photo_url,omitempty"`
}
