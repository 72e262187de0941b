package calendar

import (
	"context"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
)

type HolidayRepository interface {
	// ListByRange returns holidays with from <= date <= to ordered by date.
	ListByRange(ctx context.Context, from, to datekey.Key) ([]Holiday, error)
}
