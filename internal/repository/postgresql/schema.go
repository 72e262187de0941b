package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/database"
)

// Schema creates the read model tables the portal queries. Every statement
// is idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS holidays (
	id           UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	holiday_date DATE NOT NULL,
	name         TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_holidays_date ON holidays(holiday_date);

CREATE TABLE IF NOT EXISTS leaves (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	employee_id UUID NOT NULL,
	leave_type  TEXT NOT NULL,
	day_type    TEXT NOT NULL DEFAULT '',
	start_date  DATE NOT NULL,
	end_date    DATE NOT NULL,
	status      TEXT NOT NULL DEFAULT 'approved'
);
CREATE INDEX IF NOT EXISTS idx_leaves_employee_range ON leaves(employee_id, start_date, end_date);

CREATE TABLE IF NOT EXISTS attendances (
	id                 UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	employee_id        UUID NOT NULL,
	attendance_date    DATE NOT NULL,
	status             TEXT NOT NULL DEFAULT '',
	work_hours         TEXT NOT NULL DEFAULT '',
	total_hours_worked NUMERIC(6,2),
	first_check_in     TIMESTAMPTZ,
	last_check_out     TIMESTAMPTZ,
	UNIQUE (employee_id, attendance_date)
);

CREATE TABLE IF NOT EXISTS work_sessions (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	employee_id UUID NOT NULL,
	check_in    TIMESTAMPTZ NOT NULL,
	check_out   TIMESTAMPTZ,
	status      TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_work_sessions_employee_check_in ON work_sessions(employee_id, check_in);

CREATE TABLE IF NOT EXISTS leave_balances (
	employee_id UUID NOT NULL,
	leave_type  TEXT NOT NULL,
	available   NUMERIC(6,2) NOT NULL DEFAULT 0,
	PRIMARY KEY (employee_id, leave_type)
);

CREATE TABLE IF NOT EXISTS projects (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name       TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT '',
	start_date DATE,
	end_date   DATE
);

CREATE TABLE IF NOT EXISTS project_members (
	project_id  UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	employee_id UUID NOT NULL,
	PRIMARY KEY (project_id, employee_id)
);

CREATE TABLE IF NOT EXISTS project_tasks (
	id               UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	project_id       UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	parent_task_id   UUID REFERENCES project_tasks(id) ON DELETE CASCADE,
	name             TEXT NOT NULL,
	status           TEXT NOT NULL DEFAULT '',
	assigned_to_name TEXT NOT NULL DEFAULT '',
	due_date         DATE,
	estimated_hours  NUMERIC(8,2) NOT NULL DEFAULT 0,
	actual_hours     NUMERIC(8,2) NOT NULL DEFAULT 0,
	sort_order       INT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS time_logs (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	employee_id UUID NOT NULL,
	task_id     UUID NOT NULL REFERENCES project_tasks(id) ON DELETE CASCADE,
	log_date    DATE NOT NULL,
	hours       NUMERIC(6,2) NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_time_logs_employee_date ON time_logs(employee_id, log_date);
`

// Migrate applies Schema in a single transaction.
func Migrate(ctx context.Context, db *database.DB) error {
	return WithTransaction(ctx, db, func(ctx context.Context) error {
		if _, err := GetQuerier(ctx, db).Exec(ctx, Schema); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
		return nil
	})
}
