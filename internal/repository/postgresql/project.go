package postgresql

import (
	"context"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/project"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/database"
)

type projectRepositoryImpl struct {
	db *database.DB
}

// ListHierarchy implements project.ProjectRepository.
func (r *projectRepositoryImpl) ListHierarchy(ctx context.Context, employeeID string) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	projectQuery := `
		SELECT p.id::text, p.name, p.status,
			   COALESCE(to_char(p.start_date, 'YYYY-MM-DD'), ''),
			   COALESCE(to_char(p.end_date, 'YYYY-MM-DD'), '')
		FROM projects p
		JOIN project_members m ON m.project_id = p.id
		WHERE m.employee_id = $1
		ORDER BY p.name
	`

	rows, err := q.Query(ctx, projectQuery, employeeID)
	if err != nil {
		return nil, err
	}

	projects := make([]project.Project, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var (
			p          project.Project
			start, end string
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Status, &start, &end); err != nil {
			rows.Close()
			return nil, err
		}
		p.StartDate = keyOrZero(start)
		p.EndDate = keyOrZero(end)
		projects = append(projects, p)
		ids = append(ids, p.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return projects, nil
	}

	taskQuery := `
		SELECT id::text, project_id::text, COALESCE(parent_task_id::text, ''),
			   name, status, assigned_to_name,
			   COALESCE(to_char(due_date, 'YYYY-MM-DD'), ''),
			   estimated_hours::text, actual_hours::text
		FROM project_tasks
		WHERE project_id::text = ANY($1)
		ORDER BY sort_order, name
	`

	taskRows, err := q.Query(ctx, taskQuery, ids)
	if err != nil {
		return nil, err
	}
	defer taskRows.Close()

	var tasks []project.Task
	for taskRows.Next() {
		var (
			t                project.Task
			due, est, actual string
		)
		if err := taskRows.Scan(&t.ID, &t.ProjectID, &t.ParentTaskID, &t.Name, &t.Status, &t.AssignedToName, &due, &est, &actual); err != nil {
			return nil, err
		}
		t.DueDate = keyOrZero(due)
		t.EstimatedHours = decimalOrZero(est)
		t.ActualHours = decimalOrZero(actual)
		tasks = append(tasks, t)
	}
	if err := taskRows.Err(); err != nil {
		return nil, err
	}

	return project.BuildTree(projects, tasks), nil
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}
