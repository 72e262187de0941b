package leave

import (
	"testing"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const today = datekey.Key("2024-06-12")

func fullBalance() leave.Balance {
	return leave.Balance{
		leave.LeaveTypeSick:   decimal.NewFromInt(10),
		leave.LeaveTypeCasual: decimal.NewFromInt(10),
	}
}

func req(t leave.LeaveType, startOffset, endOffset int) leave.Request {
	return leave.Request{
		Type:      t,
		StartDate: today.AddDays(startOffset),
		EndDate:   today.AddDays(endOffset),
		DayType:   leave.DayTypeFull,
	}
}

func TestValidateLeaveRequest(t *testing.T) {
	cases := []struct {
		name     string
		req      leave.Request
		balance  leave.Balance
		accepted bool
		reason   string
		message  string
	}{
		{
			name:    "missing type",
			req:     leave.Request{StartDate: today, EndDate: today},
			reason:  leave.ReasonMissingFields,
			message: "Please fill in all required fields.",
		},
		{
			name:   "missing end date",
			req:    leave.Request{Type: leave.LeaveTypeSick, StartDate: today},
			reason: leave.ReasonMissingFields,
		},
		{
			name:    "sick leave older than a month",
			req:     req(leave.LeaveTypeSick, -40, -39),
			reason:  leave.ReasonSickTooOld,
			message: "Sick Leave cannot be applied for dates older than 1 month.",
		},
		{
			name:     "sick leave within the month",
			req:      req(leave.LeaveTypeSick, -20, -20),
			accepted: true,
		},
		{
			name:     "sick leave exactly one month back",
			req:      leave.Request{Type: leave.LeaveTypeSick, StartDate: "2024-05-12", EndDate: "2024-05-12"},
			accepted: true,
		},
		{
			name:    "end before start",
			req:     req(leave.LeaveTypeCasual, 5, 3),
			reason:  leave.ReasonEndBeforeStart,
			message: "End date cannot be before start date.",
		},
		{
			name:   "old sick leave reported before bad range",
			req:    req(leave.LeaveTypeSick, -40, -45),
			reason: leave.ReasonSickTooOld,
		},
		{
			name:    "casual leave in the past",
			req:     req(leave.LeaveTypeCasual, -1, -1),
			reason:  leave.ReasonCasualInPast,
			message: "Casual Leave cannot be applied for past dates.",
		},
		{
			name:    "casual leave tomorrow",
			req:     req(leave.LeaveTypeCasual, 1, 1),
			reason:  leave.ReasonCasualNotInAdvance,
			message: "Casual Leave must be applied at least 2 days in advance!",
		},
		{
			name:   "casual leave today",
			req:    req(leave.LeaveTypeCasual, 0, 0),
			reason: leave.ReasonCasualNotInAdvance,
		},
		{
			name:     "casual leave two days ahead",
			req:      req(leave.LeaveTypeCasual, 2, 2),
			accepted: true,
		},
		{
			name:    "unpaid leave in the future",
			req:     req(leave.LeaveTypeUnpaid, 1, 1),
			reason:  leave.ReasonUnpaidInFuture,
			message: "Unpaid Leave can only be applied for past or current dates.",
		},
		{
			name:     "unpaid leave today without balance",
			req:      req(leave.LeaveTypeUnpaid, 0, 3),
			balance:  leave.Balance{},
			accepted: true,
		},
		{
			name:    "sick leave two days ahead",
			req:     req(leave.LeaveTypeSick, 2, 2),
			reason:  leave.ReasonSickTooFarAhead,
			message: "Sick leave can only be applied 1 day in advance!.",
		},
		{
			name:     "sick leave tomorrow",
			req:      req(leave.LeaveTypeSick, 1, 1),
			accepted: true,
		},
		{
			name:    "half day without variant",
			req:     leave.Request{Type: leave.LeaveTypeSick, StartDate: today, EndDate: today, DayType: leave.DayTypeHalf},
			reason:  leave.ReasonHalfDayVariant,
			message: "Please select Half Day Type.",
		},
		{
			name:    "balance not loaded",
			req:     req(leave.LeaveTypeSick, 0, 0),
			balance: leave.Balance{},
			reason:  leave.ReasonBalanceNotLoaded,
			message: "Invalid leave type selected or balance not loaded.",
		},
		{
			name:    "insufficient balance",
			req:     req(leave.LeaveTypeCasual, 3, 5),
			balance: leave.Balance{leave.LeaveTypeCasual: decimal.RequireFromString("2.5")},
			reason:  leave.ReasonInsufficientBalance,
			message: "Insufficient Casual Leave balance. Available: 2.5, Required: 3",
		},
		{
			name:     "half day uses half a day of balance",
			req:      leave.Request{Type: leave.LeaveTypeSick, StartDate: today, EndDate: today, DayType: leave.DayTypeHalf, HalfDayVariant: leave.HalfDayFirst},
			balance:  leave.Balance{leave.LeaveTypeSick: decimal.RequireFromString("0.5")},
			accepted: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			balance := c.balance
			if balance == nil {
				balance = fullBalance()
			}

			got := ValidateLeaveRequest(c.req, balance, today)

			assert.Equal(t, c.accepted, got.Accepted)
			assert.Equal(t, c.reason, got.ReasonCode)
			if c.message != "" {
				assert.Equal(t, c.message, got.Message)
			}
		})
	}
}

func TestRequiredDays(t *testing.T) {
	assert.True(t, decimal.NewFromInt(4).Equal(RequiredDays(leave.Request{StartDate: "2024-01-30", EndDate: "2024-02-02"})))
	assert.True(t, decimal.RequireFromString("0.5").Equal(RequiredDays(leave.Request{StartDate: "2024-01-30", EndDate: "2024-02-02", DayType: leave.DayTypeHalf})))
	assert.True(t, RequiredDays(leave.Request{StartDate: "2024-02-02", EndDate: "2024-01-30"}).IsZero())
}

func TestBalanceInfo(t *testing.T) {
	balance := leave.Balance{leave.LeaveTypeSick: decimal.RequireFromString("4.5")}
	assert.Equal(t, "Available Balance: 4.5 days", BalanceInfo(balance, leave.LeaveTypeSick))
	assert.Equal(t, "Available Balance: 0 days", BalanceInfo(balance, leave.LeaveTypeCasual))
	assert.Equal(t, "Available Balance: Select leave type", BalanceInfo(balance, ""))
}
