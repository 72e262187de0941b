package leave

import "errors"

var (
	ErrBalanceNotFound  = errors.New("leave balance not found")
	ErrInvalidLeaveType = errors.New("invalid leave type")
)

// Reason codes returned in ValidationResult.ReasonCode.
const (
	ReasonMissingFields       = "MISSING_FIELDS"
	ReasonSickTooOld          = "SICK_LEAVE_TOO_OLD"
	ReasonEndBeforeStart      = "END_BEFORE_START"
	ReasonCasualInPast        = "CASUAL_LEAVE_IN_PAST"
	ReasonCasualNotInAdvance  = "CASUAL_LEAVE_NOT_IN_ADVANCE"
	ReasonUnpaidInFuture      = "UNPAID_LEAVE_IN_FUTURE"
	ReasonSickTooFarAhead     = "SICK_LEAVE_TOO_FAR_AHEAD"
	ReasonHalfDayVariant      = "HALF_DAY_TYPE_REQUIRED"
	ReasonBalanceNotLoaded    = "BALANCE_NOT_LOADED"
	ReasonInsufficientBalance = "INSUFFICIENT_BALANCE"
)
