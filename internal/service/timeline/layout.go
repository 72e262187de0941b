package timeline

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/timeline"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
)

const (
	barGutterPercent   = 0.2
	minBarWidthPercent = 0.6
)

// LayoutInterval places iv on the axis of window for day in loc. The window
// bounds are exact local instants, so a 24 end hour is next midnight and DST
// days have a 14 or 16 hour axis where the window crosses the change.
func LayoutInterval(iv timeline.Interval, day datekey.Key, window timeline.Window, loc *time.Location) timeline.Bar {
	start := day.At(window.StartHour, loc)
	end := day.At(window.EndHour, loc)
	total := end.Sub(start)
	if total <= 0 {
		return timeline.Bar{}
	}

	clippedStart := iv.Start
	if start.After(clippedStart) {
		clippedStart = start
	}
	clippedEnd := iv.End
	if end.Before(clippedEnd) {
		clippedEnd = end
	}

	duration := clippedEnd.Sub(clippedStart)
	if duration < 0 {
		duration = 0
	}
	offset := clippedStart.Sub(start)
	if offset < 0 {
		offset = 0
	}

	width := 100 * float64(duration) / float64(total)
	bar := timeline.Bar{
		OffsetPercent: 100 * float64(offset) / float64(total),
		SpanPercent:   width,
	}
	if width <= 0 {
		return bar
	}
	bar.WidthPercent = math.Max(width-barGutterPercent, minBarWidthPercent)
	bar.Visible = true
	return bar
}

// FormatDuration renders minutes as "Hh Mm".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// SessionColorClass maps a day status to the bar color.
func SessionColorClass(status string) string {
	switch strings.ToLower(status) {
	case "present", "partial":
		return "session-present"
	case "holiday":
		return "session-holiday"
	case "weekend":
		return "session-weekend"
	case "absent":
		return "session-absent"
	default:
		return "session-default"
	}
}

// StatusPillClass maps a day status to its pill style.
func StatusPillClass(status string) string {
	switch strings.ToLower(status) {
	case "present":
		return "pill pill-success"
	case "partial":
		return "pill pill-info"
	case "absent":
		return "pill pill-error"
	case "holiday":
		return "pill pill-warning"
	case "weekend":
		return "pill pill-neutral"
	default:
		return "pill pill-default"
	}
}
