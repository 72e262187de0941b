package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/shopspring/decimal"
)

type attendanceRepository struct {
	db *sql.DB
}

func (r *attendanceRepository) ListByEmployeeRange(ctx context.Context, employeeID string, from, to datekey.Key) ([]attendance.Attendance, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, employee_id, attendance_date, status, work_hours,
		       total_hours_worked, first_check_in, last_check_out
		FROM attendances
		WHERE employee_id = ? AND attendance_date BETWEEN ? AND ?
		ORDER BY attendance_date`, employeeID, from.String(), to.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var (
			a                  attendance.Attendance
			date               string
			total, first, last sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.EmployeeID, &date, &a.Status, &a.WorkHours, &total, &first, &last); err != nil {
			return nil, err
		}
		a.Date = datekey.Key(date)
		if total.Valid && total.String != "" {
			d, err := decimal.NewFromString(total.String)
			if err != nil {
				return nil, err
			}
			a.TotalHoursWorked = &d
		}
		if a.FirstCheckIn, err = parseNullTime(first); err != nil {
			return nil, err
		}
		if a.LastCheckOut, err = parseNullTime(last); err != nil {
			return nil, err
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

type sessionRepository struct {
	db *sql.DB
}

func (r *sessionRepository) ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Session, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, employee_id, check_in, check_out, status
		FROM work_sessions
		WHERE employee_id = ? AND check_in >= ? AND check_in < ?
		ORDER BY check_in`, employeeID, formatTime(from), formatTime(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]attendance.Session, 0)
	for rows.Next() {
		var (
			s        attendance.Session
			checkIn  string
			checkOut sql.NullString
		)
		if err := rows.Scan(&s.ID, &s.EmployeeID, &checkIn, &checkOut, &s.Status); err != nil {
			return nil, err
		}
		if s.CheckIn, err = parseTime(checkIn); err != nil {
			return nil, err
		}
		if s.CheckOut, err = parseNullTime(checkOut); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}
