package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrPhoneNumberInUse = errors.New("phone number already registered")
)
