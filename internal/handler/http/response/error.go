package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/timelog"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
)

// ErrInvalidTimeZone is returned for an unknown tz query parameter.
var ErrInvalidTimeZone = errors.New("invalid time zone")

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Identity errors
	case errors.Is(err, jwt.ErrMissingEmployee),
		errors.Is(err, attendance.ErrEmployeeRequired):
		Unauthorized(w, "Employee identity is required")

	// Request errors
	case errors.Is(err, ErrInvalidTimeZone):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, calendar.ErrInvalidMonth),
		errors.Is(err, calendar.ErrInvalidYear),
		errors.Is(err, leave.ErrInvalidLeaveType),
		errors.Is(err, timelog.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Lookup errors
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
