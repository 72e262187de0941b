package leave

import (
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ValidateLeaveRequest struct {
	EmployeeID     string         `json:"-"`
	LeaveType      string         `json:"leave_type"`
	StartDate      string         `json:"start_date"`
	EndDate        string         `json:"end_date"`
	DayType        string         `json:"day_type"`
	HalfDayVariant string         `json:"half_day_type"`
	Location       *time.Location `json:"-"`
}

// Validate only checks the shape of the fields that were sent. Missing fields
// are reported by the leave rules themselves.
func (r *ValidateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.LeaveType) && !LeaveType(r.LeaveType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of Sick Leave, Casual Leave, Unpaid Leave",
		})
	}
	if !validator.IsEmpty(r.StartDate) {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if !validator.IsEmpty(r.EndDate) {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if !validator.IsEmpty(r.DayType) && !validator.IsInSlice(r.DayType, []string{string(DayTypeFull), string(DayTypeHalf)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "day_type",
			Message: "day_type must be Full Day or Half Day",
		})
	}
	if !validator.IsEmpty(r.HalfDayVariant) && !validator.IsInSlice(r.HalfDayVariant, []string{string(HalfDayFirst), string(HalfDaySecond)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "half_day_type",
			Message: "half_day_type must be 1st Half or 2nd Half",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToRequest converts the DTO after Validate has passed.
func (r *ValidateLeaveRequest) ToRequest() Request {
	req := Request{
		Type:           LeaveType(r.LeaveType),
		DayType:        DayType(r.DayType),
		HalfDayVariant: HalfDayVariant(r.HalfDayVariant),
	}
	if k, err := datekey.Parse(r.StartDate); err == nil {
		req.StartDate = k
	}
	if k, err := datekey.Parse(r.EndDate); err == nil {
		req.EndDate = k
	}
	return req
}

type BalanceResponse struct {
	LeaveType string          `json:"leave_type"`
	Available decimal.Decimal `json:"available"`
	Info      string          `json:"info"`
}
