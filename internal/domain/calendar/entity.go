package calendar

import (
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
)

type Holiday struct {
	ID   string      `json:"id"`
	Date datekey.Key `json:"date"`
	Name string      `json:"name"`
}

// Label falls back to "Holiday" for unnamed entries.
func (h Holiday) Label() string {
	if h.Name == "" {
		return "Holiday"
	}
	return h.Name
}

type OverlayKind string

const (
	OverlayNone       OverlayKind = "none"
	OverlayHoliday    OverlayKind = "holiday"
	OverlayLeave      OverlayKind = "leave"
	OverlayAttendance OverlayKind = "attendance"
)

// Precedence is the order in which overlays are tried for a date. The first
// kind with an entry wins.
var Precedence = []OverlayKind{OverlayHoliday, OverlayLeave, OverlayAttendance}

// Overlay is the single annotation shown on a calendar day. Exactly one of
// Holiday, Leave or Attendance is set unless Kind is OverlayNone.
type Overlay struct {
	Kind  OverlayKind `json:"kind"`
	Label string      `json:"label,omitempty"`
	Hours string      `json:"hours,omitempty"`
	Badge string      `json:"badge,omitempty"`

	Holiday    *Holiday               `json:"-"`
	Leave      *leave.Record          `json:"-"`
	Attendance *attendance.Attendance `json:"-"`
}

// Overlays holds the per-day inputs for one month. Nil maps are treated as empty.
type Overlays struct {
	Holidays   map[datekey.Key]Holiday
	Leaves     map[datekey.Key]leave.Record
	Attendance map[datekey.Key]attendance.Attendance
}

type DayCell struct {
	Date      datekey.Key `json:"date"`
	DayNumber int         `json:"day_number"`
	IsPadding bool        `json:"is_padding"`
	IsToday   bool        `json:"is_today"`
	IsWeekend bool        `json:"is_weekend"`
	Overlay   Overlay     `json:"overlay"`
}
