package calendar

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/report"
	"golang.org/x/sync/errgroup"
)

const defaultUpcomingLimit = 5

type CalendarServiceImpl struct {
	calendar.HolidayRepository
	leave.LeaveRepository
	attendance.AttendanceRepository
	now func() time.Time
}

// GetMonth implements calendar.CalendarService.
func (s *CalendarServiceImpl) GetMonth(ctx context.Context, req calendar.MonthRequest) (calendar.MonthResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.MonthResponse{}, err
	}

	month := time.Month(req.Month)
	from := datekey.New(req.Year, month, 1)
	to := datekey.New(req.Year, month, datekey.DaysInMonth(req.Year, month))

	var (
		holidays []calendar.Holiday
		leaves   []leave.Record
		records  []attendance.Attendance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		holidays, err = s.HolidayRepository.ListByRange(gctx, from, to)
		if err != nil {
			return fmt.Errorf("failed to list holidays: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		leaves, err = s.LeaveRepository.ListApprovedByEmployeeRange(gctx, req.EmployeeID, from, to)
		if err != nil {
			return fmt.Errorf("failed to list leaves: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.AttendanceRepository.ListByEmployeeRange(gctx, req.EmployeeID, from, to)
		if err != nil {
			return fmt.Errorf("failed to list attendance: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return calendar.MonthResponse{}, err
	}

	leaveDays, truncated := ExpandLeaves(leaves)
	if truncated {
		slog.Warn("Leave range exceeded expansion cap", "employee_id", req.EmployeeID, "year", req.Year, "month", req.Month)
	}

	overlays := calendar.Overlays{
		Holidays:   make(map[datekey.Key]calendar.Holiday, len(holidays)),
		Leaves:     leaveDays,
		Attendance: make(map[datekey.Key]attendance.Attendance, len(records)),
	}
	for _, h := range holidays {
		if _, exists := overlays.Holidays[h.Date]; !exists {
			overlays.Holidays[h.Date] = h
		}
	}
	for _, a := range records {
		overlays.Attendance[a.Date] = a
	}

	today := datekey.FromTime(s.now(), req.Location)

	return calendar.MonthResponse{
		Year:      req.Year,
		Month:     req.Month,
		MonthName: month.String(),
		Weekdays:  calendar.WeekdayLabels,
		Cells:     BuildMonthGrid(req.Year, month, overlays, today),
		Truncated: truncated,
	}, nil
}

// RenderMonthPDF implements calendar.CalendarService.
func (s *CalendarServiceImpl) RenderMonthPDF(ctx context.Context, req calendar.MonthRequest, w io.Writer) error {
	month, err := s.GetMonth(ctx, req)
	if err != nil {
		return err
	}

	ref, err := report.MonthPDF(w, "Attendance Calendar", month, s.now().In(locOrLocal(req.Location)))
	if err != nil {
		return err
	}
	slog.Info("Calendar PDF generated", "employee_id", req.EmployeeID, "ref", ref)
	return nil
}

// UpcomingHolidays implements calendar.CalendarService.
func (s *CalendarServiceImpl) UpcomingHolidays(ctx context.Context, limit int, loc *time.Location) ([]calendar.Holiday, error) {
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}
	today := datekey.FromTime(s.now(), loc)

	holidays, err := s.HolidayRepository.ListByRange(ctx, today, today.AddDays(365))
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming holidays: %w", err)
	}
	if len(holidays) > limit {
		holidays = holidays[:limit]
	}
	return holidays, nil
}

func locOrLocal(loc *time.Location) *time.Location {
	if loc == nil {
		return time.Local
	}
	return loc
}

func NewCalendarService(
	holidayRepository calendar.HolidayRepository,
	leaveRepository leave.LeaveRepository,
	attendanceRepository attendance.AttendanceRepository,
	now func() time.Time,
) calendar.CalendarService {
	if now == nil {
		now = time.Now
	}
	return &CalendarServiceImpl{
		HolidayRepository:    holidayRepository,
		LeaveRepository:      leaveRepository,
		AttendanceRepository: attendanceRepository,
		now:                  now,
	}
}
