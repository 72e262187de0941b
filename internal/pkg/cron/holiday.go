package cron

import (
	"context"
	"time"
)

// Refresher is anything that reloads cached data, e.g. the holiday cache.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type HolidayJobs struct {
	cache    Refresher
	interval time.Duration
}

func NewHolidayJobs(cache Refresher, interval time.Duration) *HolidayJobs {
	return &HolidayJobs{cache: cache, interval: interval}
}

func (j *HolidayJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("refresh_holiday_cache", j.interval, j.cache.Refresh)
}
