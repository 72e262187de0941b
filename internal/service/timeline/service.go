package timeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/timeline"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"golang.org/x/sync/errgroup"
)

type TimelineServiceImpl struct {
	attendance.SessionRepository
	attendance.AttendanceRepository
	calendar.HolidayRepository
	window         timeline.Window
	minimumMinutes int
	now            func() time.Time
}

// GetWeek implements timeline.TimelineService.
func (s *TimelineServiceImpl) GetWeek(ctx context.Context, req timeline.WeekRequest) (timeline.WeekResponse, error) {
	if err := req.Validate(); err != nil {
		return timeline.WeekResponse{}, err
	}

	now := s.now()
	today := datekey.FromTime(now, req.Location)
	ref := today
	if req.Date != "" {
		ref, _ = datekey.Parse(req.Date)
	}
	monday, sunday := ref.WeekRange()

	var (
		sessions []attendance.Session
		records  []attendance.Attendance
		holidays []calendar.Holiday
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sessions, err = s.SessionRepository.ListByEmployeeRange(gctx, req.EmployeeID, monday.Time(req.Location), sunday.AddDays(1).Time(req.Location))
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.AttendanceRepository.ListByEmployeeRange(gctx, req.EmployeeID, monday, sunday)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		holidays, err = s.HolidayRepository.ListByRange(gctx, monday, sunday)
		if err != nil {
			return fmt.Errorf("failed to list holidays: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return timeline.WeekResponse{}, err
	}

	byDay := make(map[datekey.Key][]attendance.Session)
	for _, sess := range sessions {
		key := datekey.FromTime(sess.CheckIn, req.Location)
		byDay[key] = append(byDay[key], sess)
	}
	statusByDay := make(map[datekey.Key]string, len(records))
	for _, a := range records {
		statusByDay[a.Date] = a.Status
	}
	holidayByDay := make(map[datekey.Key]bool, len(holidays))
	for _, h := range holidays {
		holidayByDay[h.Date] = true
	}

	resp := timeline.WeekResponse{
		From:       monday,
		To:         sunday,
		RangeLabel: shortDate(monday) + " - " + shortDate(sunday),
		Window:     s.window,
		Hours:      s.window.Hours(),
	}

	for _, day := range datekey.Between(monday, sunday) {
		d := timeline.Day{
			Date:      day,
			DayOfWeek: day.Weekday().String()[:3],
			DayLabel:  shortDate(day),
			IsToday:   day == today,
		}

		for _, sess := range byDay[day] {
			minutes := sessionMinutes(sess, now)
			d.TotalMinutes += minutes
			d.Sessions = append(d.Sessions, timeline.SessionBar{
				SessionID:     sess.ID,
				CheckIn:       sess.CheckIn,
				CheckOut:      sess.CheckOut,
				Open:          sess.IsOpen(),
				DurationLabel: FormatDuration(minutes),
				Bar:           LayoutInterval(timeline.Interval{Start: sess.CheckIn, End: sess.End(now)}, day, s.window, req.Location),
			})
		}

		d.Status = s.dayStatus(day, today, statusByDay[day], holidayByDay[day], len(d.Sessions), d.TotalMinutes)
		d.PillClass = StatusPillClass(d.Status)
		d.TotalLabel = FormatDuration(d.TotalMinutes)
		color := SessionColorClass(d.Status)
		for i := range d.Sessions {
			d.Sessions[i].ColorClass = color
		}

		resp.Summary.TotalMinutes += d.TotalMinutes
		switch strings.ToLower(d.Status) {
		case "present", "partial":
			resp.Summary.PresentDays++
		case "absent":
			resp.Summary.AbsentDays++
		}
		resp.Days = append(resp.Days, d)
	}
	resp.Summary.TotalLabel = FormatDuration(resp.Summary.TotalMinutes)

	return resp, nil
}

// dayStatus prefers the stored attendance status, then holidays, then what
// the sessions show.
func (s *TimelineServiceImpl) dayStatus(day, today datekey.Key, recorded string, holiday bool, sessions, minutes int) string {
	switch {
	case recorded != "":
		return recorded
	case holiday:
		return timeline.StatusHoliday
	case sessions > 0 && minutes >= s.minimumMinutes:
		return timeline.StatusPresent
	case sessions > 0:
		return timeline.StatusPartial
	case day.Weekday() == time.Sunday:
		return timeline.StatusWeekend
	case day.Before(today):
		return timeline.StatusAbsent
	default:
		return ""
	}
}

// GetToday implements timeline.TimelineService.
func (s *TimelineServiceImpl) GetToday(ctx context.Context, employeeID string, loc *time.Location) (timeline.TodayResponse, error) {
	if strings.TrimSpace(employeeID) == "" {
		return timeline.TodayResponse{}, attendance.ErrEmployeeRequired
	}

	now := s.now()
	today := datekey.FromTime(now, loc)

	sessions, err := s.SessionRepository.ListByEmployeeRange(ctx, employeeID, today.Time(loc), today.AddDays(1).Time(loc))
	if err != nil {
		return timeline.TodayResponse{}, fmt.Errorf("failed to list today's sessions: %w", err)
	}

	resp := timeline.TodayResponse{
		Date:           today,
		SessionCount:   len(sessions),
		MinimumMinutes: s.minimumMinutes,
	}
	for _, sess := range sessions {
		resp.TotalMinutes += sessionMinutes(sess, now)
		if sess.IsOpen() {
			resp.HasOpenSession = true
		}
	}
	resp.TotalLabel = FormatDuration(resp.TotalMinutes)
	resp.EarlyCheckoutWarning = resp.TotalMinutes < s.minimumMinutes

	return resp, nil
}

func sessionMinutes(sess attendance.Session, now time.Time) int {
	d := sess.End(now).Sub(sess.CheckIn)
	if d <= 0 {
		return 0
	}
	return int(d / time.Minute)
}

func shortDate(k datekey.Key) string {
	return fmt.Sprintf("%s %d", k.Month().String()[:3], k.Day())
}

func NewTimelineService(
	sessionRepository attendance.SessionRepository,
	attendanceRepository attendance.AttendanceRepository,
	holidayRepository calendar.HolidayRepository,
	window timeline.Window,
	minimumMinutes int,
	now func() time.Time,
) (timeline.TimelineService, error) {
	if !window.IsValid() {
		return nil, timeline.ErrInvalidWindow
	}
	if now == nil {
		now = time.Now
	}
	return &TimelineServiceImpl{
		SessionRepository:    sessionRepository,
		AttendanceRepository: attendanceRepository,
		HolidayRepository:    holidayRepository,
		window:               window,
		minimumMinutes:       minimumMinutes,
		now:                  now,
	}, nil
}
