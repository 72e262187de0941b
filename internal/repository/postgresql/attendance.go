package postgresql

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

// ListByEmployeeRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, from, to datekey.Key) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id::text, employee_id::text, to_char(attendance_date, 'YYYY-MM-DD'),
			   status, work_hours, COALESCE(total_hours_worked::text, ''),
			   first_check_in, last_check_out
		FROM attendances
		WHERE employee_id = $1
		  AND attendance_date BETWEEN $2::date AND $3::date
		ORDER BY attendance_date
	`

	rows, err := q.Query(ctx, query, employeeID, from.String(), to.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var (
			a           attendance.Attendance
			date, total string
		)
		if err := rows.Scan(&a.ID, &a.EmployeeID, &date, &a.Status, &a.WorkHours, &total, &a.FirstCheckIn, &a.LastCheckOut); err != nil {
			return nil, err
		}
		a.Date = keyOrZero(date)
		if total != "" {
			d := decimalOrZero(total)
			a.TotalHoursWorked = &d
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

type sessionRepositoryImpl struct {
	db *database.DB
}

// ListByEmployeeRange implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id::text, employee_id::text, check_in, check_out, status
		FROM work_sessions
		WHERE employee_id = $1
		  AND check_in >= $2
		  AND check_in < $3
		ORDER BY check_in
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]attendance.Session, 0)
	for rows.Next() {
		var s attendance.Session
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.CheckIn, &s.CheckOut, &s.Status); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

func NewSessionRepository(db *database.DB) attendance.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}
