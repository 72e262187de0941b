package timeline

import (
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
)

type WeekRequest struct {
	EmployeeID string
	// Date is any day of the requested week. Empty means the current week.
	Date     string
	Location *time.Location
}

func (r *WeekRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WeekResponse struct {
	From       datekey.Key `json:"from"`
	To         datekey.Key `json:"to"`
	RangeLabel string      `json:"range_label"`
	Window     Window      `json:"window"`
	Hours      []int       `json:"hours"`
	Days       []Day       `json:"days"`
	Summary    WeekSummary `json:"summary"`
}

type TodayResponse struct {
	Date                 datekey.Key `json:"date"`
	TotalMinutes         int         `json:"total_minutes"`
	TotalLabel           string      `json:"total_label"`
	SessionCount         int         `json:"session_count"`
	HasOpenSession       bool        `json:"has_open_session"`
	MinimumMinutes       int         `json:"minimum_minutes"`
	EarlyCheckoutWarning bool        `json:"early_checkout_warning"`
}
