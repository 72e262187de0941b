package project

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/project"
)

type ProjectServiceImpl struct {
	project.ProjectRepository
}

// Hierarchy implements project.ProjectService.
func (s *ProjectServiceImpl) Hierarchy(ctx context.Context, req project.HierarchyRequest) (project.HierarchyResponse, error) {
	if err := req.Validate(); err != nil {
		return project.HierarchyResponse{}, err
	}

	projects, err := s.ProjectRepository.ListHierarchy(ctx, req.EmployeeID)
	if err != nil {
		return project.HierarchyResponse{}, fmt.Errorf("failed to list project hierarchy: %w", err)
	}

	expanded := make(map[string]bool, len(req.Expanded))
	for _, id := range req.Expanded {
		expanded[id] = true
	}

	rows := Flatten(projects, expanded)
	if rows == nil {
		rows = []project.Row{}
	}
	return project.HierarchyResponse{Rows: rows}, nil
}

func NewProjectService(projectRepository project.ProjectRepository) project.ProjectService {
	return &ProjectServiceImpl{ProjectRepository: projectRepository}
}
