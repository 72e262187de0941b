package http

import (
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/timeline"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
)

type TimelineHandler interface {
	Week(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
}

type timelineHandlerImpl struct {
	viewer
	timelineService timeline.TimelineService
}

func NewTimelineHandler(timelineService timeline.TimelineService, defaultLocation *time.Location) TimelineHandler {
	return &timelineHandlerImpl{
		viewer:          newViewer(defaultLocation, nil),
		timelineService: timelineService,
	}
}

// Week implements TimelineHandler.
func (h *timelineHandlerImpl) Week(w http.ResponseWriter, r *http.Request) {
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

	req := timeline.WeekRequest{
		EmployeeID: employeeID,
		Date:       r.URL.Query().Get("date"),
		Location:   loc,
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	week, err := h.timelineService.GetWeek(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, week)
}

// Today implements TimelineHandler.
func (h *timelineHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
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

	today, err := h.timelineService.GetToday(r.Context(), employeeID, loc)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, today)
}
