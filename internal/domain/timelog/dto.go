package timelog

import (
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SummaryRequest struct {
	EmployeeID string
	Period     string
	// Month is YYYY-MM; empty means the current month.
	Month    string
	Week     string
	Location *time.Location
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	switch Period(r.Period) {
	case PeriodMonth, "":
		if !validator.IsEmpty(r.Month) {
			if _, ok := validator.IsValidMonth(r.Month); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "month",
					Message: "month must be in YYYY-MM format",
				})
			}
		}
	case PeriodWeek:
		if !validator.IsEmpty(r.Week) && !validator.IsInSlice(r.Week, []string{string(WeekThis), string(WeekLast)}) {
			errs = append(errs, validator.ValidationError{
				Field:   "week",
				Message: "week must be this or last",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be month or week",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SummaryResponse struct {
	Period     Period          `json:"period"`
	From       datekey.Key     `json:"from"`
	To         datekey.Key     `json:"to"`
	Tasks      []TaskSummary   `json:"tasks"`
	TotalHours decimal.Decimal `json:"total_hours"`
}
