package calendar

import (
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
)

type MonthRequest struct {
	EmployeeID string
	Year       int
	Month      int
	Location   *time.Location
}

func (r *MonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.Year < 1970 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: ErrInvalidYear.Error(),
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: ErrInvalidMonth.Error(),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthResponse struct {
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	MonthName string    `json:"month_name"`
	Weekdays  []string  `json:"weekdays"`
	Cells     []DayCell `json:"cells"`
	Truncated bool      `json:"truncated"`
}

// Weeks splits the cells into rows of seven.
func (m MonthResponse) Weeks() [][]DayCell {
	var weeks [][]DayCell
	for i := 0; i+7 <= len(m.Cells); i += 7 {
		weeks = append(weeks, m.Cells[i:i+7])
	}
	return weeks
}

var WeekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
