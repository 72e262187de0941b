package timeline

import (
	"context"
	"time"
)

type TimelineService interface {
	GetWeek(ctx context.Context, req WeekRequest) (WeekResponse, error)
	GetToday(ctx context.Context, employeeID string, loc *time.Location) (TodayResponse, error)
}
