package attendance

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
)

// AttendanceRepository reads daily attendance summaries.
type AttendanceRepository interface {
	// ListByEmployeeRange returns records with from <= date <= to.
	ListByEmployeeRange(ctx context.Context, employeeID string, from, to datekey.Key) ([]Attendance, error)
}

// SessionRepository reads check-in/check-out sessions.
type SessionRepository interface {
	// ListByEmployeeRange returns sessions whose check-in falls in [from, to).
	ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]Session, error)
}
