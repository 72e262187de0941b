package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/regularization"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
)

type RegularizationHandler interface {
	Validate(w http.ResponseWriter, r *http.Request)
}

type regularizationHandlerImpl struct {
	viewer
	regularizationService regularization.RegularizationService
}

func NewRegularizationHandler(regularizationService regularization.RegularizationService, defaultLocation *time.Location) RegularizationHandler {
	return &regularizationHandlerImpl{
		viewer:                newViewer(defaultLocation, nil),
		regularizationService: regularizationService,
	}
}

// Validate implements RegularizationHandler.
func (h *regularizationHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	var req regularization.ValidateRegularizationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ValidateRegularization decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	employeeID, err := h.employeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	loc, err := h.location(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	req.EmployeeID = employeeID
	req.Location = loc

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.regularizationService.Validate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
