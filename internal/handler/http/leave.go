package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Balances(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	viewer
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService, defaultLocation *time.Location) LeaveHandler {
	return &leaveHandlerImpl{
		viewer:       newViewer(defaultLocation, nil),
		leaveService: leaveService,
	}
}

// Balances implements LeaveHandler.
func (h *leaveHandlerImpl) Balances(w http.ResponseWriter, r *http.Request) {
	employeeID, err := h.employeeID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	balances, err := h.leaveService.GetBalances(r.Context(), employeeID)
	if err != nil {
		slog.Error("Failed to load leave balances", "employee_id", employeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

// Validate implements LeaveHandler. A rejected request is still a 200; the
// outcome is in the body.
func (h *leaveHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	var req leave.ValidateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ValidateLeave decode error", "error", err)
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

	result, err := h.leaveService.ValidateRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
