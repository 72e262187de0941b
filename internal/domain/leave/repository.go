package leave

import (
	"context"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/shopspring/decimal"
)

type LeaveRepository interface {
	// ListApprovedByEmployeeRange returns approved leaves overlapping [from, to].
	ListApprovedByEmployeeRange(ctx context.Context, employeeID string, from, to datekey.Key) ([]Record, error)
}

type BalanceRepository interface {
	GetBalances(ctx context.Context, employeeID string) (Balance, error)
	GetBalance(ctx context.Context, employeeID string, leaveType LeaveType) (decimal.Decimal, error)
}
