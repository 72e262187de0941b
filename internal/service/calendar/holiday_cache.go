package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
)

// HolidayCache keeps a window of holidays in memory around today and serves
// ranges inside that window without hitting the store. Ranges outside it go
// to the wrapped repository.
type HolidayCache struct {
	next   calendar.HolidayRepository
	now    func() time.Time
	loc    *time.Location
	before int
	after  int

	mu       sync.RWMutex
	from, to datekey.Key
	byDate   []calendar.Holiday
	loaded   bool
}

func NewHolidayCache(next calendar.HolidayRepository, now func() time.Time, loc *time.Location) *HolidayCache {
	if now == nil {
		now = time.Now
	}
	return &HolidayCache{
		next:   next,
		now:    now,
		loc:    loc,
		before: 12,
		after:  12,
	}
}

// Refresh reloads the cached window. It is safe to call while readers are active.
func (c *HolidayCache) Refresh(ctx context.Context) error {
	today := datekey.FromTime(c.now(), c.loc)
	from := today.StartOfMonth().AddMonths(-c.before)
	to := today.StartOfMonth().AddMonths(c.after + 1).AddDays(-1)

	holidays, err := c.next.ListByRange(ctx, from, to)
	if err != nil {
		return fmt.Errorf("failed to load holidays: %w", err)
	}

	c.mu.Lock()
	c.from, c.to = from, to
	c.byDate = holidays
	c.loaded = true
	c.mu.Unlock()

	slog.Info("Holiday cache refreshed", "from", from, "to", to, "count", len(holidays))
	return nil
}

// ListByRange implements calendar.HolidayRepository.
func (c *HolidayCache) ListByRange(ctx context.Context, from, to datekey.Key) ([]calendar.Holiday, error) {
	c.mu.RLock()
	hit := c.loaded && !from.Before(c.from) && !to.After(c.to)
	var out []calendar.Holiday
	if hit {
		for _, h := range c.byDate {
			if !h.Date.Before(from) && !h.Date.After(to) {
				out = append(out, h)
			}
		}
	}
	c.mu.RUnlock()

	if hit {
		return out, nil
	}
	return c.next.ListByRange(ctx, from, to)
}
