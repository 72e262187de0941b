package regularization

import (
	"fmt"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/regularization"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var (
	fullDayThreshold = decimal.NewFromInt(9)
	fullDayRequired  = decimal.NewFromInt(8)
	sixty            = decimal.NewFromInt(60)
)

// RegularizedHours is the corrected worked time in hours, counted in whole
// minutes. It is zero when either time is missing or the range is not positive.
func RegularizedHours(req regularization.Request) decimal.Decimal {
	in, err := validator.ParseClock(req.CheckIn)
	if err != nil {
		return decimal.Zero
	}
	out, err := validator.ParseClock(req.CheckOut)
	if err != nil || out <= in {
		return decimal.Zero
	}
	minutes := out - in
	return decimal.NewFromInt(int64(minutes / 60)).Add(decimal.NewFromInt(int64(minutes % 60)).Div(sixty))
}

// RequiredLoggedHours is how much time must already be logged against tasks
// for a regularized duration. Eight hours cover a full day once the corrected
// duration reaches nine hours; shorter corrections need their own duration.
func RequiredLoggedHours(regularized decimal.Decimal) decimal.Decimal {
	if regularized.GreaterThanOrEqual(fullDayThreshold) {
		return fullDayRequired
	}
	return regularized
}

// ValidateRegularization gates a correction request on its date, its times
// and the hours logged for that date. today is the viewer's local date.
func ValidateRegularization(req regularization.Request, loggedHours decimal.Decimal, today datekey.Key) validator.Result {
	if req.Date.IsZero() {
		return validator.Reject(regularization.ReasonMissingDate, "Please select a date.")
	}
	if req.Date.After(today) {
		return validator.Reject(regularization.ReasonFutureDate, "Regularization requests are not allowed for future dates.")
	}
	if !loggedHours.IsPositive() {
		return validator.Reject(regularization.ReasonNoLoggedTime, "Please log your time before submitting regularization request!")
	}
	if req.CheckIn == "" || req.CheckOut == "" {
		return validator.Reject(regularization.ReasonMissingTimes, "Please enter both check-in and check-out times.")
	}

	in, errIn := validator.ParseClock(req.CheckIn)
	out, errOut := validator.ParseClock(req.CheckOut)
	if errIn != nil || errOut != nil || out <= in {
		return validator.Reject(regularization.ReasonInvalidTimeRange, "Check-out time must be after check-in time.")
	}

	required := RequiredLoggedHours(RegularizedHours(req))
	if loggedHours.LessThan(required) {
		return validator.Reject(regularization.ReasonInsufficientLog,
			fmt.Sprintf("Please log at least %s hours. Currently logged: %s hours.", required.StringFixed(2), loggedHours.StringFixed(2)))
	}

	return validator.Accept("Regularization request is valid.")
}
