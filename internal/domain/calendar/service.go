package calendar

import (
	"context"
	"io"
	"time"
)

type CalendarService interface {
	GetMonth(ctx context.Context, req MonthRequest) (MonthResponse, error)
	RenderMonthPDF(ctx context.Context, req MonthRequest, w io.Writer) error
	UpcomingHolidays(ctx context.Context, limit int, loc *time.Location) ([]Holiday, error)
}
