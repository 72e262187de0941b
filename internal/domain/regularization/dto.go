package regularization

import (
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ValidateRegularizationRequest struct {
	EmployeeID string         `json:"-"`
	Date       string         `json:"date"`
	CheckIn    string         `json:"check_in"`
	CheckOut   string         `json:"check_out"`
	Location   *time.Location `json:"-"`
}

func (r *ValidateRegularizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(r.Date) {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if !validator.IsEmpty(r.CheckIn) && !validator.IsValidClock(r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in must be in HH:MM format",
		})
	}
	if !validator.IsEmpty(r.CheckOut) && !validator.IsValidClock(r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check_out must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *ValidateRegularizationRequest) ToRequest() Request {
	req := Request{CheckIn: r.CheckIn, CheckOut: r.CheckOut}
	if k, err := datekey.Parse(r.Date); err == nil {
		req.Date = k
	}
	return req
}

type ValidationResponse struct {
	validator.Result
	RegularizedHours decimal.Decimal `json:"regularized_hours"`
	RequiredHours    decimal.Decimal `json:"required_hours"`
	LoggedHours      decimal.Decimal `json:"logged_hours"`
}
