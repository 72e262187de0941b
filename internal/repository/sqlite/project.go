package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/project"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/shopspring/decimal"
)

type projectRepository struct {
	db *sql.DB
}

func (r *projectRepository) ListHierarchy(ctx context.Context, employeeID string) ([]project.Project, error) {
	projects, err := r.listProjects(ctx, employeeID)
	if err != nil || len(projects) == 0 {
		return projects, err
	}

	ids := make([]interface{}, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, project_id, parent_task_id, name, status, assigned_to_name,
		       due_date, estimated_hours, actual_hours
		FROM project_tasks
		WHERE project_id IN (`+placeholders+`)
		ORDER BY sort_order, name`, ids...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []project.Task
	for rows.Next() {
		var (
			t                project.Task
			due, est, actual string
		)
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.ParentTaskID, &t.Name, &t.Status, &t.AssignedToName, &due, &est, &actual); err != nil {
			return nil, err
		}
		t.DueDate = datekey.Key(due)
		if t.EstimatedHours, err = decimal.NewFromString(est); err != nil {
			return nil, err
		}
		if t.ActualHours, err = decimal.NewFromString(actual); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return project.BuildTree(projects, tasks), nil
}

// listProjects drains its rows before returning; the store holds a single
// connection.
func (r *projectRepository) listProjects(ctx context.Context, employeeID string) ([]project.Project, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.id, p.name, p.status, p.start_date, p.end_date
		FROM projects p
		JOIN project_members m ON m.project_id = p.id
		WHERE m.employee_id = ?
		ORDER BY p.name`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]project.Project, 0)
	for rows.Next() {
		var (
			p          project.Project
			start, end string
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Status, &start, &end); err != nil {
			return nil, err
		}
		p.StartDate = datekey.Key(start)
		p.EndDate = datekey.Key(end)
		projects = append(projects, p)
	}

	return projects, rows.Err()
}
