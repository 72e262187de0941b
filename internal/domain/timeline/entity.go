package timeline

import (
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
)

// Window is the daily hour range that the timeline axis spans. EndHour may be
// 24, meaning midnight at the end of the day.
type Window struct {
	StartHour int `json:"start_hour"`
	EndHour   int `json:"end_hour"`
}

func (w Window) IsValid() bool {
	return w.StartHour >= 0 && w.EndHour <= 24 && w.StartHour < w.EndHour
}

// Hours lists the axis labels, one per hour from start to end inclusive.
func (w Window) Hours() []int {
	hours := make([]int, 0, w.EndHour-w.StartHour+1)
	for h := w.StartHour; h <= w.EndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// Interval is one check-in/check-out pair in absolute time.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Bar is the horizontal placement of an interval on the window axis, in
// percent of the window. WidthPercent is the width to draw; SpanPercent is
// the true clipped duration.
type Bar struct {
	OffsetPercent float64 `json:"offset_percent"`
	WidthPercent  float64 `json:"width_percent"`
	SpanPercent   float64 `json:"span_percent"`
	Visible       bool    `json:"visible"`
}

type SessionBar struct {
	SessionID     string     `json:"session_id"`
	CheckIn       time.Time  `json:"check_in"`
	CheckOut      *time.Time `json:"check_out,omitempty"`
	Open          bool       `json:"open"`
	DurationLabel string     `json:"duration_label"`
	ColorClass    string     `json:"color_class"`
	Bar           Bar        `json:"bar"`
}

type Day struct {
	Date         datekey.Key  `json:"date"`
	DayOfWeek    string       `json:"day_of_week"`
	DayLabel     string       `json:"day_label"`
	Status       string       `json:"status"`
	PillClass    string       `json:"pill_class"`
	IsToday      bool         `json:"is_today"`
	TotalMinutes int          `json:"total_minutes"`
	TotalLabel   string       `json:"total_label"`
	Sessions     []SessionBar `json:"sessions"`
}

type WeekSummary struct {
	TotalMinutes int    `json:"total_minutes"`
	TotalLabel   string `json:"total_label"`
	PresentDays  int    `json:"present_days"`
	AbsentDays   int    `json:"absent_days"`
}

// Day statuses.
const (
	StatusPresent = "Present"
	StatusPartial = "Partial"
	StatusAbsent  = "Absent"
	StatusHoliday = "Holiday"
	StatusWeekend = "Weekend"
)
