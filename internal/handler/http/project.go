package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/project"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
)

type ProjectHandler interface {
	Hierarchy(w http.ResponseWriter, r *http.Request)
}

type projectHandlerImpl struct {
	viewer
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &projectHandlerImpl{
		viewer:         newViewer(nil, nil),
		projectService: projectService,
	}
}

// Hierarchy implements ProjectHandler.
func (h *projectHandlerImpl) Hierarchy(w http.ResponseWriter, r *http.Request) {
	employeeID, err := h.employeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := project.HierarchyRequest{
		EmployeeID: employeeID,
		Expanded:   project.ParseExpanded(r.URL.Query().Get("expanded")),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	hierarchy, err := h.projectService.Hierarchy(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, hierarchy)
}
