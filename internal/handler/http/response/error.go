package response

import (
	"errors"
	"net/http"

	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/advance"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/attendance"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/auth"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/employee"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/payment"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/report"
	"github.com/Jaganbehera1/Worker-Management-System/internal/domain/user"
	"github.com/Jaganbehera1/Worker-Management-System/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrUsernameTaken):
		Conflict(w, "Username already taken")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrPhoneNumberInUse):
		Conflict(w, "Phone number already registered")

	// Ledger domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceAlreadyExists):
		Conflict(w, "Attendance already recorded for this date")
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance not found")
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Salary payment not found")
	case errors.Is(err, payment.ErrStoreUnavailable):
		ServiceUnavailable(w, "Salary payment store is unavailable")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidMonth):
		BadRequest(w, "Invalid month, expected YYYY-MM", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
