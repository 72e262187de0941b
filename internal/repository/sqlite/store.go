// Package sqlite stores the portal read model in a single SQLite file. It
// backs local development, the portalctl command and tests; production runs
// on the postgresql package. Both implement the same domain repositories.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/project"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/timelog"
	_ "github.com/mattn/go-sqlite3"
)

// timeLayout is fixed width UTC so instants compare correctly as text.
const timeLayout = "2006-01-02T15:04:05Z"

type Store struct {
	db *sql.DB
}

// New opens the database at path and applies the schema. Use ":memory:" for
// a private in-memory database.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS holidays (
		id TEXT PRIMARY KEY,
		holiday_date TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_holidays_date ON holidays(holiday_date);

	CREATE TABLE IF NOT EXISTS leaves (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		leave_type TEXT NOT NULL,
		day_type TEXT NOT NULL DEFAULT '',
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'approved'
	);
	CREATE INDEX IF NOT EXISTS idx_leaves_employee_range ON leaves(employee_id, start_date, end_date);

	CREATE TABLE IF NOT EXISTS attendances (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		attendance_date TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT '',
		work_hours TEXT NOT NULL DEFAULT '',
		total_hours_worked TEXT,
		first_check_in TEXT,
		last_check_out TEXT,
		UNIQUE (employee_id, attendance_date)
	);

	CREATE TABLE IF NOT EXISTS work_sessions (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		check_in TEXT NOT NULL,
		check_out TEXT,
		status TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_work_sessions_employee_check_in ON work_sessions(employee_id, check_in);

	CREATE TABLE IF NOT EXISTS leave_balances (
		employee_id TEXT NOT NULL,
		leave_type TEXT NOT NULL,
		available TEXT NOT NULL DEFAULT '0',
		PRIMARY KEY (employee_id, leave_type)
	);

	CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT '',
		start_date TEXT NOT NULL DEFAULT '',
		end_date TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS project_members (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		employee_id TEXT NOT NULL,
		PRIMARY KEY (project_id, employee_id)
	);

	CREATE TABLE IF NOT EXISTS project_tasks (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		parent_task_id TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT '',
		assigned_to_name TEXT NOT NULL DEFAULT '',
		due_date TEXT NOT NULL DEFAULT '',
		estimated_hours TEXT NOT NULL DEFAULT '0',
		actual_hours TEXT NOT NULL DEFAULT '0',
		sort_order INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS time_logs (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL,
		task_id TEXT NOT NULL REFERENCES project_tasks(id) ON DELETE CASCADE,
		log_date TEXT NOT NULL,
		hours TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_time_logs_employee_date ON time_logs(employee_id, log_date);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

func (s *Store) Holidays() calendar.HolidayRepository { return &holidayRepository{db: s.db} }

func (s *Store) Leaves() leave.LeaveRepository { return &leaveRepository{db: s.db} }

func (s *Store) Balances() leave.BalanceRepository { return &balanceRepository{db: s.db} }

func (s *Store) Attendance() attendance.AttendanceRepository { return &attendanceRepository{db: s.db} }

func (s *Store) Sessions() attendance.SessionRepository { return &sessionRepository{db: s.db} }

func (s *Store) TimeLogs() timelog.TimeLogRepository { return &timeLogRepository{db: s.db} }

func (s *Store) Projects() project.ProjectRepository { return &projectRepository{db: s.db} }

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored time %q: %w", s, err)
	}
	return t, nil
}

func parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
