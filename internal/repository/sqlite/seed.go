package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fixture is the JSON document accepted by Seed. Missing ids are generated.
type Fixture struct {
	Holidays   []HolidayFixture    `json:"holidays"`
	Leaves     []LeaveFixture      `json:"leaves"`
	Attendance []AttendanceFixture `json:"attendance"`
	Sessions   []SessionFixture    `json:"sessions"`
	Balances   []BalanceFixture    `json:"balances"`
	Projects   []ProjectFixture    `json:"projects"`
	TimeLogs   []TimeLogFixture    `json:"time_logs"`
}

type HolidayFixture struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

type LeaveFixture struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	DayType    string `json:"day_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	// Status defaults to "approved".
	Status string `json:"status"`
}

type AttendanceFixture struct {
	EmployeeID       string           `json:"employee_id"`
	Date             string           `json:"date"`
	Status           string           `json:"status"`
	WorkHours        string           `json:"work_hours"`
	TotalHoursWorked *decimal.Decimal `json:"total_hours_worked"`
}

type SessionFixture struct {
	EmployeeID string     `json:"employee_id"`
	CheckIn    time.Time  `json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
	Status     string     `json:"status"`
}

type BalanceFixture struct {
	EmployeeID string          `json:"employee_id"`
	LeaveType  string          `json:"leave_type"`
	Available  decimal.Decimal `json:"available"`
}

type ProjectFixture struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Status    string        `json:"status"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Members   []string      `json:"members"`
	Tasks     []TaskFixture `json:"tasks"`
}

type TaskFixture struct {
	ID             string          `json:"id"`
	ParentTaskID   string          `json:"parent_task_id"`
	Name           string          `json:"name"`
	Status         string          `json:"status"`
	AssignedToName string          `json:"assigned_to_name"`
	DueDate        string          `json:"due_date"`
	EstimatedHours decimal.Decimal `json:"estimated_hours"`
	ActualHours    decimal.Decimal `json:"actual_hours"`
}

type TimeLogFixture struct {
	EmployeeID string          `json:"employee_id"`
	TaskID     string          `json:"task_id"`
	Date       string          `json:"date"`
	Hours      decimal.Decimal `json:"hours"`
}

// DecodeFixture reads a Fixture from JSON.
func DecodeFixture(r io.Reader) (Fixture, error) {
	var f Fixture
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return Fixture{}, fmt.Errorf("decode fixture: %w", err)
	}
	return f, nil
}

// Seed inserts every fixture row in one transaction.
func (s *Store) Seed(ctx context.Context, f Fixture) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	steps := []func(context.Context, *sql.Tx, Fixture) error{
		seedHolidays,
		seedLeaves,
		seedAttendance,
		seedSessions,
		seedBalances,
		seedProjects,
		seedTimeLogs,
	}
	for _, step := range steps {
		if err := step(ctx, tx, f); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func seedHolidays(ctx context.Context, tx *sql.Tx, f Fixture) error {
	for _, h := range f.Holidays {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO holidays (id, holiday_date, name) VALUES (?, ?, ?)`,
			newID(""), h.Date, h.Name); err != nil {
			return fmt.Errorf("seed holiday %s: %w", h.Date, err)
		}
	}
	return nil
}

func seedLeaves(ctx context.Context, tx *sql.Tx, f Fixture) error {
	for _, l := range f.Leaves {
		status := l.Status
		if status == "" {
			status = "approved"
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO leaves (id, employee_id, leave_type, day_type, start_date, end_date, status)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			newID(""), l.EmployeeID, l.LeaveType, l.DayType, l.StartDate, l.EndDate, status); err != nil {
			return fmt.Errorf("seed leave %s: %w", l.StartDate, err)
		}
	}
	return nil
}

func seedAttendance(ctx context.Context, tx *sql.Tx, f Fixture) error {
	for _, a := range f.Attendance {
		var total sql.NullString
		if a.TotalHoursWorked != nil {
			total = sql.NullString{String: a.TotalHoursWorked.String(), Valid: true}
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO attendances (id, employee_id, attendance_date, status, work_hours, total_hours_worked)
			VALUES (?, ?, ?, ?, ?, ?)`,
			newID(""), a.EmployeeID, a.Date, a.Status, a.WorkHours, total); err != nil {
			return fmt.Errorf("seed attendance %s: %w", a.Date, err)
		}
	}
	return nil
}

func seedSessions(ctx context.Context, tx *sql.Tx, f Fixture) error {
	for _, ws := range f.Sessions {
		var checkOut sql.NullString
		if ws.CheckOut != nil {
			checkOut = sql.NullString{String: formatTime(*ws.CheckOut), Valid: true}
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO work_sessions (id, employee_id, check_in, check_out, status)
			VALUES (?, ?, ?, ?, ?)`,
			newID(""), ws.EmployeeID, formatTime(ws.CheckIn), checkOut, ws.Status); err != nil {
			return fmt.Errorf("seed session: %w", err)
		}
	}
	return nil
}

func seedBalances(ctx context.Context, tx *sql.Tx, f Fixture) error {
	for _, b := range f.Balances {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO leave_balances (employee_id, leave_type, available) VALUES (?, ?, ?)
			ON CONFLICT (employee_id, leave_type) DO UPDATE SET available = excluded.available`,
			b.EmployeeID, b.LeaveType, b.Available.String()); err != nil {
			return fmt.Errorf("seed balance %s: %w", b.LeaveType, err)
		}
	}
	return nil
}

func seedProjects(ctx context.Context, tx *sql.Tx, f Fixture) error {
	for _, p := range f.Projects {
		projectID := newID(p.ID)
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO projects (id, name, status, start_date, end_date) VALUES (?, ?, ?, ?, ?)`,
			projectID, p.Name, p.Status, p.StartDate, p.EndDate); err != nil {
			return fmt.Errorf("seed project %s: %w", p.Name, err)
		}
		for _, member := range p.Members {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO project_members (project_id, employee_id) VALUES (?, ?)`,
				projectID, member); err != nil {
				return fmt.Errorf("seed project member: %w", err)
			}
		}
		for i, t := range p.Tasks {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO project_tasks (id, project_id, parent_task_id, name, status, assigned_to_name,
				                           due_date, estimated_hours, actual_hours, sort_order)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				newID(t.ID), projectID, t.ParentTaskID, t.Name, t.Status, t.AssignedToName,
				t.DueDate, t.EstimatedHours.String(), t.ActualHours.String(), i); err != nil {
				return fmt.Errorf("seed task %s: %w", t.Name, err)
			}
		}
	}
	return nil
}

func seedTimeLogs(ctx context.Context, tx *sql.Tx, f Fixture) error {
	for _, l := range f.TimeLogs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO time_logs (id, employee_id, task_id, log_date, hours) VALUES (?, ?, ?, ?, ?)`,
			newID(""), l.EmployeeID, l.TaskID, l.Date, l.Hours.String()); err != nil {
			return fmt.Errorf("seed time log %s: %w", l.Date, err)
		}
	}
	return nil
}
