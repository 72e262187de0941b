package http

import (
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/timelog"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
)

type TimeLogHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type timeLogHandlerImpl struct {
	viewer
	timeLogService timelog.TimeLogService
}

func NewTimeLogHandler(timeLogService timelog.TimeLogService, defaultLocation *time.Location) TimeLogHandler {
	return &timeLogHandlerImpl{
		viewer:         newViewer(defaultLocation, nil),
		timeLogService: timeLogService,
	}
}

// Summary implements TimeLogHandler.
func (h *timeLogHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
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

	query := r.URL.Query()
	req := timelog.SummaryRequest{
		EmployeeID: employeeID,
		Period:     query.Get("period"),
		Month:      query.Get("month"),
		Week:       query.Get("week"),
		Location:   loc,
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.timeLogService.Summary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
