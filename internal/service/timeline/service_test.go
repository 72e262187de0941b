package timeline

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/timeline"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessions struct{ sessions []attendance.Session }

func (f *fakeSessions) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Session, error) {
	var out []attendance.Session
	for _, s := range f.sessions {
		if !s.CheckIn.Before(from) && s.CheckIn.Before(to) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeAttendance struct{ records []attendance.Attendance }

func (f *fakeAttendance) ListByEmployeeRange(ctx context.Context, employeeID string, from, to datekey.Key) ([]attendance.Attendance, error) {
	return f.records, nil
}

type fakeHolidays struct{ holidays []calendar.Holiday }

func (f *fakeHolidays) ListByRange(ctx context.Context, from, to datekey.Key) ([]calendar.Holiday, error) {
	return f.holidays, nil
}

func timePtr(t time.Time) *time.Time { return &t }

func newTestService(t *testing.T, sessions []attendance.Session, records []attendance.Attendance, holidays []calendar.Holiday, now time.Time) timeline.TimelineService {
	t.Helper()
	svc, err := NewTimelineService(
		&fakeSessions{sessions: sessions},
		&fakeAttendance{records: records},
		&fakeHolidays{holidays: holidays},
		workWindow,
		480,
		func() time.Time { return now },
	)
	require.NoError(t, err)
	return svc
}

func TestGetWeek(t *testing.T) {
	mon := datekey.Key("2024-06-03")
	sessions := []attendance.Session{
		{ID: "s1", CheckIn: at(mon, 9, 0), CheckOut: timePtr(at(mon, 13, 0))},
		{ID: "s2", CheckIn: at(mon, 14, 0), CheckOut: timePtr(at(mon, 18, 30))},
		{ID: "s3", CheckIn: at(mon.AddDays(1), 10, 0), CheckOut: timePtr(at(mon.AddDays(1), 12, 0))},
		{ID: "s4", CheckIn: at(mon.AddDays(3), 9, 0)},
	}
	holidays := []calendar.Holiday{{Date: mon.AddDays(2), Name: "Festival"}}
	now := at(mon.AddDays(3), 11, 15)

	svc := newTestService(t, sessions, nil, holidays, now)
	resp, err := svc.GetWeek(context.Background(), timeline.WeekRequest{EmployeeID: "emp-1", Date: "2024-06-06", Location: time.UTC})
	require.NoError(t, err)

	assert.Equal(t, mon, resp.From)
	assert.Equal(t, datekey.Key("2024-06-09"), resp.To)
	assert.Equal(t, "Jun 3 - Jun 9", resp.RangeLabel)
	require.Len(t, resp.Days, 7)
	assert.Len(t, resp.Hours, 16)

	monday := resp.Days[0]
	assert.Equal(t, "Mon", monday.DayOfWeek)
	assert.Equal(t, timeline.StatusPresent, monday.Status)
	assert.Equal(t, 510, monday.TotalMinutes)
	assert.Equal(t, "8h 30m", monday.TotalLabel)
	require.Len(t, monday.Sessions, 2)
	assert.Equal(t, "session-present", monday.Sessions[0].ColorClass)
	assert.InDelta(t, 0, monday.Sessions[0].Bar.OffsetPercent, 1e-9)

	assert.Equal(t, timeline.StatusPartial, resp.Days[1].Status)
	assert.Equal(t, timeline.StatusHoliday, resp.Days[2].Status)

	thursday := resp.Days[3]
	assert.True(t, thursday.IsToday)
	require.Len(t, thursday.Sessions, 1)
	assert.True(t, thursday.Sessions[0].Open)
	assert.Equal(t, 135, thursday.TotalMinutes)

	assert.Equal(t, "", resp.Days[4].Status)
	assert.Equal(t, timeline.StatusWeekend, resp.Days[6].Status)

	assert.Equal(t, 510+120+135, resp.Summary.TotalMinutes)
	assert.Equal(t, 3, resp.Summary.PresentDays)
	assert.Equal(t, 0, resp.Summary.AbsentDays)
}

func TestGetWeekRecordedStatusWins(t *testing.T) {
	mon := datekey.Key("2024-06-03")
	records := []attendance.Attendance{{Date: mon, Status: "Absent"}}
	now := at(mon.AddDays(2), 8, 0)

	svc := newTestService(t, nil, records, nil, now)
	resp, err := svc.GetWeek(context.Background(), timeline.WeekRequest{EmployeeID: "emp-1", Location: time.UTC})
	require.NoError(t, err)

	assert.Equal(t, "Absent", resp.Days[0].Status)
	assert.Equal(t, "pill pill-error", resp.Days[0].PillClass)
	assert.Equal(t, timeline.StatusAbsent, resp.Days[1].Status)
	assert.Equal(t, "", resp.Days[2].Status)
	assert.Equal(t, 2, resp.Summary.AbsentDays)
}

func TestGetWeekValidation(t *testing.T) {
	svc := newTestService(t, nil, nil, nil, time.Now())

	_, err := svc.GetWeek(context.Background(), timeline.WeekRequest{EmployeeID: "emp-1", Date: "06/03/2024"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "date")
}

func TestGetToday(t *testing.T) {
	day := datekey.Key("2024-06-03")
	sessions := []attendance.Session{
		{ID: "s1", CheckIn: at(day, 9, 0), CheckOut: timePtr(at(day, 12, 0))},
		{ID: "s2", CheckIn: at(day, 13, 0)},
		{ID: "old", CheckIn: at(day.AddDays(-1), 9, 0), CheckOut: timePtr(at(day.AddDays(-1), 18, 0))},
	}

	svc := newTestService(t, sessions, nil, nil, at(day, 15, 30))
	resp, err := svc.GetToday(context.Background(), "emp-1", time.UTC)
	require.NoError(t, err)

	assert.Equal(t, day, resp.Date)
	assert.Equal(t, 2, resp.SessionCount)
	assert.Equal(t, 330, resp.TotalMinutes)
	assert.True(t, resp.HasOpenSession)
	assert.True(t, resp.EarlyCheckoutWarning)

	svc = newTestService(t, sessions, nil, nil, at(day, 18, 0))
	resp, err = svc.GetToday(context.Background(), "emp-1", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 480, resp.TotalMinutes)
	assert.False(t, resp.EarlyCheckoutWarning)
}

func TestNewTimelineServiceRejectsBadWindow(t *testing.T) {
	_, err := NewTimelineService(&fakeSessions{}, &fakeAttendance{}, &fakeHolidays{}, timeline.Window{StartHour: 20, EndHour: 9}, 480, nil)
	assert.ErrorIs(t, err, timeline.ErrInvalidWindow)
}
