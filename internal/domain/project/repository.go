package project

import "context"

type ProjectRepository interface {
	// ListHierarchy returns the projects the employee works on with their
	// tasks and subtasks nested.
	ListHierarchy(ctx context.Context, employeeID string) ([]Project, error)
}
