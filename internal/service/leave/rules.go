package leave

import (
	"fmt"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var halfDay = decimal.NewFromFloat(0.5)

// RequiredDays is the balance a request consumes: half a day for half-day
// requests, otherwise every calendar day in the inclusive range.
func RequiredDays(req leave.Request) decimal.Decimal {
	if req.DayType == leave.DayTypeHalf {
		return halfDay
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() || req.EndDate.Before(req.StartDate) {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(req.StartDate.DaysUntil(req.EndDate) + 1))
}

// ValidateLeaveRequest applies the leave admission rules in order and stops
// at the first one that fails. today is the viewer's local date.
func ValidateLeaveRequest(req leave.Request, balance leave.Balance, today datekey.Key) leave.ValidationResult {
	required := RequiredDays(req)
	reject := func(code, message string) leave.ValidationResult {
		return leave.ValidationResult{Result: validator.Reject(code, message), RequiredDays: required}
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() || req.Type == "" {
		return reject(leave.ReasonMissingFields, "Please fill in all required fields.")
	}

	if req.Type == leave.LeaveTypeSick && req.StartDate.Before(today.AddMonths(-1)) {
		return reject(leave.ReasonSickTooOld, "Sick Leave cannot be applied for dates older than 1 month.")
	}

	if req.EndDate.Before(req.StartDate) {
		return reject(leave.ReasonEndBeforeStart, "End date cannot be before start date.")
	}

	daysAhead := today.DaysUntil(req.StartDate)

	switch req.Type {
	case leave.LeaveTypeCasual:
		if req.StartDate.Before(today) {
			return reject(leave.ReasonCasualInPast, "Casual Leave cannot be applied for past dates.")
		}
		if daysAhead < 2 {
			return reject(leave.ReasonCasualNotInAdvance, "Casual Leave must be applied at least 2 days in advance!")
		}
	case leave.LeaveTypeUnpaid:
		if daysAhead > 0 {
			return reject(leave.ReasonUnpaidInFuture, "Unpaid Leave can only be applied for past or current dates.")
		}
	case leave.LeaveTypeSick:
		if daysAhead > 1 {
			return reject(leave.ReasonSickTooFarAhead, "Sick leave can only be applied 1 day in advance!.")
		}
	}

	if req.DayType == leave.DayTypeHalf && req.HalfDayVariant == "" {
		return reject(leave.ReasonHalfDayVariant, "Please select Half Day Type.")
	}

	if !req.Type.IsBalanceExempt() {
		available, ok := balance[req.Type]
		if !ok {
			return reject(leave.ReasonBalanceNotLoaded, "Invalid leave type selected or balance not loaded.")
		}
		if available.LessThan(required) {
			return reject(leave.ReasonInsufficientBalance,
				fmt.Sprintf("Insufficient %s balance. Available: %s, Required: %s", req.Type, available, required))
		}
	}

	return leave.ValidationResult{Result: validator.Accept("Leave request is valid."), RequiredDays: required}
}

// BalanceInfo is the helper text shown under the leave type selector.
func BalanceInfo(balance leave.Balance, leaveType leave.LeaveType) string {
	if leaveType == "" {
		return "Available Balance: Select leave type"
	}
	available, ok := balance[leaveType]
	if !ok {
		return "Available Balance: 0 days"
	}
	return fmt.Sprintf("Available Balance: %s days", available)
}
