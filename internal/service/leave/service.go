package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
)

type LeaveServiceImpl struct {
	leave.BalanceRepository
	now func() time.Time
}

var balanceOrder = []leave.LeaveType{leave.LeaveTypeSick, leave.LeaveTypeCasual, leave.LeaveTypeUnpaid}

// GetBalances implements leave.LeaveService.
func (l *LeaveServiceImpl) GetBalances(ctx context.Context, employeeID string) ([]leave.BalanceResponse, error) {
	balance, err := l.BalanceRepository.GetBalances(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave balances: %w", err)
	}

	out := make([]leave.BalanceResponse, 0, len(balance))
	for _, t := range balanceOrder {
		available, ok := balance[t]
		if !ok {
			continue
		}
		out = append(out, leave.BalanceResponse{
			LeaveType: string(t),
			Available: available,
			Info:      BalanceInfo(balance, t),
		})
	}
	return out, nil
}

// ValidateRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) ValidateRequest(ctx context.Context, req leave.ValidateLeaveRequest) (leave.ValidationResult, error) {
	if err := req.Validate(); err != nil {
		return leave.ValidationResult{}, err
	}

	balance, err := l.BalanceRepository.GetBalances(ctx, req.EmployeeID)
	if err != nil && !errors.Is(err, leave.ErrBalanceNotFound) {
		return leave.ValidationResult{}, fmt.Errorf("failed to get leave balances: %w", err)
	}

	today := datekey.FromTime(l.now(), req.Location)
	return ValidateLeaveRequest(req.ToRequest(), balance, today), nil
}

func NewLeaveService(balanceRepository leave.BalanceRepository, now func() time.Time) leave.LeaveService {
	if now == nil {
		now = time.Now
	}
	return &LeaveServiceImpl{
		BalanceRepository: balanceRepository,
		now:               now,
	}
}
