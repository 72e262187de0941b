package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
)

type CalendarHandler interface {
	Month(w http.ResponseWriter, r *http.Request)
	MonthPDF(w http.ResponseWriter, r *http.Request)
	UpcomingHolidays(w http.ResponseWriter, r *http.Request)
}

type calendarHandlerImpl struct {
	viewer
	calendarService calendar.CalendarService
}

func NewCalendarHandler(calendarService calendar.CalendarService, defaultLocation *time.Location, now func() time.Time) CalendarHandler {
	return &calendarHandlerImpl{
		viewer:          newViewer(defaultLocation, now),
		calendarService: calendarService,
	}
}

// monthRequest reads year and month, defaulting to the viewer's current month.
func (h *calendarHandlerImpl) monthRequest(r *http.Request) (calendar.MonthRequest, error) {
	employeeID, err := h.employeeID(r)
	if err != nil {
		return calendar.MonthRequest{}, err
	}
	loc, err := h.location(r)
	if err != nil {
		return calendar.MonthRequest{}, err
	}

	today := h.now().In(loc)
	year, ok := queryInt(r, "year", today.Year())
	if !ok {
		return calendar.MonthRequest{}, calendar.ErrInvalidYear
	}
	month, ok := queryInt(r, "month", int(today.Month()))
	if !ok {
		return calendar.MonthRequest{}, calendar.ErrInvalidMonth
	}

	req := calendar.MonthRequest{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Location:   loc,
	}
	if err := req.Validate(); err != nil {
		return calendar.MonthRequest{}, err
	}
	return req, nil
}

// Month implements CalendarHandler.
func (h *calendarHandlerImpl) Month(w http.ResponseWriter, r *http.Request) {
	req, err := h.monthRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	month, err := h.calendarService.GetMonth(r.Context(), req)
	if err != nil {
		slog.Error("Failed to build calendar month", "employee_id", req.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, month)
}

// MonthPDF implements CalendarHandler.
func (h *calendarHandlerImpl) MonthPDF(w http.ResponseWriter, r *http.Request) {
	req, err := h.monthRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := h.calendarService.RenderMonthPDF(r.Context(), req, &buf); err != nil {
		slog.Error("Failed to render calendar pdf", "employee_id", req.EmployeeID, "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="calendar-%04d-%02d.pdf"`, req.Year, req.Month))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write calendar pdf", "error", err)
	}
}

// UpcomingHolidays implements CalendarHandler.
func (h *calendarHandlerImpl) UpcomingHolidays(w http.ResponseWriter, r *http.Request) {
	loc, err := h.location(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	limit, ok := queryInt(r, "limit", 0)
	if !ok || limit < 0 {
		response.BadRequest(w, "limit must be a positive number", nil)
		return
	}

	holidays, err := h.calendarService.UpcomingHolidays(r.Context(), limit, loc)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}
