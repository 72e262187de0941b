package timelog

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/timelog"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/shopspring/decimal"
)

type TimeLogServiceImpl struct {
	timelog.TimeLogRepository
	now func() time.Time
}

// PeriodRange resolves a month (YYYY-MM) or a this/last week selection to
// an inclusive date range. Weeks run Monday to Sunday.
func PeriodRange(period timelog.Period, month string, week timelog.Week, today datekey.Key) (datekey.Key, datekey.Key, error) {
	switch period {
	case timelog.PeriodMonth, "":
		first := today.StartOfMonth()
		if month != "" {
			t, err := time.Parse("2006-01", month)
			if err != nil {
				return "", "", fmt.Errorf("%w: %v", timelog.ErrInvalidPeriod, err)
			}
			first = datekey.New(t.Year(), t.Month(), 1)
		}
		return first, first.AddMonths(1).AddDays(-1), nil

	case timelog.PeriodWeek:
		monday, sunday := today.WeekRange()
		switch week {
		case timelog.WeekThis, "":
			return monday, sunday, nil
		case timelog.WeekLast:
			return monday.AddDays(-7), sunday.AddDays(-7), nil
		}
	}
	return "", "", timelog.ErrInvalidPeriod
}

// Summary implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) Summary(ctx context.Context, req timelog.SummaryRequest) (timelog.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return timelog.SummaryResponse{}, err
	}

	period := timelog.Period(req.Period)
	if period == "" {
		period = timelog.PeriodMonth
	}
	today := datekey.FromTime(s.now(), req.Location)

	from, to, err := PeriodRange(period, req.Month, timelog.Week(req.Week), today)
	if err != nil {
		return timelog.SummaryResponse{}, err
	}

	tasks, err := s.TimeLogRepository.SummaryByTask(ctx, req.EmployeeID, from, to)
	if err != nil {
		return timelog.SummaryResponse{}, fmt.Errorf("failed to summarize time logs: %w", err)
	}

	total := decimal.Zero
	for _, t := range tasks {
		total = total.Add(t.Hours)
	}

	return timelog.SummaryResponse{
		Period:     period,
		From:       from,
		To:         to,
		Tasks:      tasks,
		TotalHours: total,
	}, nil
}

func NewTimeLogService(timeLogRepository timelog.TimeLogRepository, now func() time.Time) timelog.TimeLogService {
	if now == nil {
		now = time.Now
	}
	return &TimeLogServiceImpl{
		TimeLogRepository: timeLogRepository,
		now:               now,
	}
}
