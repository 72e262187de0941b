package regularization

import "github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"

// Request is a correction of one day's check-in and check-out. CheckIn and
// CheckOut are HH:MM wall clock times on Date.
type Request struct {
	Date     datekey.Key
	CheckIn  string
	CheckOut string
}

// Reason codes returned in the validation result.
const (
	ReasonMissingDate      = "MISSING_DATE"
	ReasonFutureDate       = "FUTURE_DATE"
	ReasonNoLoggedTime     = "NO_LOGGED_TIME"
	ReasonMissingTimes     = "MISSING_TIMES"
	ReasonInvalidTimeRange = "INVALID_TIME_RANGE"
	ReasonInsufficientLog  = "INSUFFICIENT_LOGGED_HOURS"
)
