package leave

import "context"

type LeaveService interface {
	GetBalances(ctx context.Context, employeeID string) ([]BalanceResponse, error)
	ValidateRequest(ctx context.Context, req ValidateLeaveRequest) (ValidationResult, error)
}
