package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/shopspring/decimal"
)

// Attendance is the daily attendance summary kept by the server layer.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       datekey.Key
	Status     string
	// WorkHours is the preformatted label, e.g. "8:30". Empty when unknown.
	WorkHours        string
	TotalHoursWorked *decimal.Decimal
	FirstCheckIn     *time.Time
	LastCheckOut     *time.Time
}

// HoursLabel returns the label shown next to the status.
func (a Attendance) HoursLabel() string {
	if a.WorkHours != "" {
		return a.WorkHours
	}
	if a.TotalHoursWorked != nil && !a.TotalHoursWorked.IsZero() {
		return a.TotalHoursWorked.String() + " Hrs"
	}
	return ""
}

// StatusOrDefault falls back to Present when the record has no status.
func (a Attendance) StatusOrDefault() string {
	if a.Status == "" {
		return "Present"
	}
	return a.Status
}

func (a Attendance) statusContains(s string) bool {
	return strings.Contains(strings.ToLower(a.Status), s)
}

// IsLeaveLike reports statuses that mean the employee was on leave.
func (a Attendance) IsLeaveLike() bool { return a.statusContains("leave") }

// Badge classifies the status for display.
func (a Attendance) Badge() string {
	switch {
	case a.statusContains("absent"):
		return "status-absent"
	case a.statusContains("half"):
		return "status-half-day"
	case a.statusContains("leave"):
		return "status-leave"
	default:
		return "status-present"
	}
}

// Session is one check-in/check-out pair. CheckOut is nil while the session is open.
type Session struct {
	ID         string
	EmployeeID string
	CheckIn    time.Time
	CheckOut   *time.Time
	Status     string
}

// End returns the check-out time, or now for an open session.
func (s Session) End(now time.Time) time.Time {
	if s.CheckOut != nil {
		return *s.CheckOut
	}
	return now
}

// IsOpen reports whether the session has not been checked out yet.
func (s Session) IsOpen() bool { return s.CheckOut == nil }
