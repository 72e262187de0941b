package calendar

import (
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
)

// MaxLeaveSpanDays bounds how many days a single leave record may expand to.
const MaxLeaveSpanDays = 366

// BuildMonthGrid lays out a month as rows of seven cells starting on Sunday.
// Leading and trailing cells are padding taken from the neighbouring months
// and never carry an overlay.
func BuildMonthGrid(year int, month time.Month, overlays calendar.Overlays, today datekey.Key) []calendar.DayCell {
	first := datekey.New(year, month, 1)
	lead := int(first.Weekday())
	days := datekey.DaysInMonth(year, month)

	cells := make([]calendar.DayCell, 0, 42)

	for i := lead; i > 0; i-- {
		cells = append(cells, paddingCell(first.AddDays(-i)))
	}

	for d := 1; d <= days; d++ {
		key := datekey.New(year, month, d)
		cells = append(cells, calendar.DayCell{
			Date:      key,
			DayNumber: d,
			IsToday:   key == today,
			IsWeekend: key.Weekday() == time.Sunday,
			Overlay:   ResolveOverlay(overlays, key),
		})
	}

	if rem := len(cells) % 7; rem != 0 {
		next := datekey.New(year, month+1, 1)
		for i := 0; i < 7-rem; i++ {
			cells = append(cells, paddingCell(next.AddDays(i)))
		}
	}

	return cells
}

func paddingCell(key datekey.Key) calendar.DayCell {
	return calendar.DayCell{
		Date:      key,
		DayNumber: key.Day(),
		IsPadding: true,
		Overlay:   calendar.Overlay{Kind: calendar.OverlayNone},
	}
}

// ResolveOverlay picks the overlay for key following calendar.Precedence.
func ResolveOverlay(overlays calendar.Overlays, key datekey.Key) calendar.Overlay {
	for _, kind := range calendar.Precedence {
		if o, ok := lookup(overlays, kind, key); ok {
			return o
		}
	}
	return calendar.Overlay{Kind: calendar.OverlayNone}
}

func lookup(overlays calendar.Overlays, kind calendar.OverlayKind, key datekey.Key) (calendar.Overlay, bool) {
	switch kind {
	case calendar.OverlayHoliday:
		h, ok := overlays.Holidays[key]
		if !ok {
			return calendar.Overlay{}, false
		}
		return calendar.Overlay{
			Kind:    calendar.OverlayHoliday,
			Label:   h.Label(),
			Badge:   "status-holiday",
			Holiday: &h,
		}, true

	case calendar.OverlayLeave:
		l, ok := overlays.Leaves[key]
		if !ok {
			return calendar.Overlay{}, false
		}
		return calendar.Overlay{
			Kind:  calendar.OverlayLeave,
			Label: l.Label(),
			Badge: "status-leave",
			Leave: &l,
		}, true

	case calendar.OverlayAttendance:
		a, ok := overlays.Attendance[key]
		if !ok {
			return calendar.Overlay{}, false
		}
		o := calendar.Overlay{
			Kind:       calendar.OverlayAttendance,
			Label:      a.StatusOrDefault(),
			Badge:      a.Badge(),
			Attendance: &a,
		}
		if !a.IsLeaveLike() {
			o.Hours = a.HoursLabel()
		}
		return o, true
	}
	return calendar.Overlay{}, false
}

// ExpandLeaves turns leave ranges into one entry per covered day. The first
// record inserted for a day keeps it. Records whose range is longer than
// MaxLeaveSpanDays are cut short and reported through the truncated flag;
// records ending before they start contribute nothing.
func ExpandLeaves(records []leave.Record) (map[datekey.Key]leave.Record, bool) {
	out := make(map[datekey.Key]leave.Record)
	truncated := false

	for _, rec := range records {
		if rec.StartDate.IsZero() || rec.EndDate.IsZero() || rec.EndDate.Before(rec.StartDate) {
			continue
		}
		day := rec.StartDate
		for i := 0; !day.After(rec.EndDate); i++ {
			if i == MaxLeaveSpanDays {
				truncated = true
				break
			}
			if _, taken := out[day]; !taken {
				out[day] = rec
			}
			day = day.AddDays(1)
		}
	}

	return out, truncated
}
