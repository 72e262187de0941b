package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingRefresher struct {
	calls atomic.Int32
	err   error
}

func (c *countingRefresher) Refresh(ctx context.Context) error {
	c.calls.Add(1)
	return c.err
}

func TestRunOnce(t *testing.T) {
	ok := &countingRefresher{}
	bad := &countingRefresher{err: errors.New("db down")}

	s := NewScheduler()
	NewHolidayJobs(ok, time.Hour).RegisterJobs(s)
	s.AddJob("failing", time.Hour, bad.Refresh)
	s.AddJob("ignored", 0, bad.Refresh)

	failed := s.RunOnce(context.Background())

	assert.Equal(t, 1, failed)
	assert.Equal(t, int32(1), ok.calls.Load())
	assert.Equal(t, int32(1), bad.calls.Load())
}

func TestStartRunsImmediatelyAndStops(t *testing.T) {
	r := &countingRefresher{}

	s := NewScheduler()
	NewHolidayJobs(r, time.Hour).RegisterJobs(s)
	s.Start(context.Background())

	assert.Eventually(t, func() bool { return r.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	s.Stop()

	n := r.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, n, r.calls.Load())
}

func TestStopWithoutStart(t *testing.T) {
	s := NewScheduler()
	assert.NotPanics(t, s.Stop)
}
