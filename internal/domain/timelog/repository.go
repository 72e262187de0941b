package timelog

import (
	"context"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/shopspring/decimal"
)

type TimeLogRepository interface {
	// TotalLoggedHours sums every entry the employee logged on date. It
	// returns zero when nothing was logged.
	TotalLoggedHours(ctx context.Context, employeeID string, date datekey.Key) (decimal.Decimal, error)
	// SummaryByTask groups entries in [from, to] by task, largest first.
	SummaryByTask(ctx context.Context, employeeID string, from, to datekey.Key) ([]TaskSummary, error)
}
