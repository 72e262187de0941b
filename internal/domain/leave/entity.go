package leave

import (
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type LeaveType string

const (
	LeaveTypeSick   LeaveType = "Sick Leave"
	LeaveTypeCasual LeaveType = "Casual Leave"
	LeaveTypeUnpaid LeaveType = "Unpaid Leave"
)

func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveTypeSick, LeaveTypeCasual, LeaveTypeUnpaid:
		return true
	}
	return false
}

// IsBalanceExempt reports leave types that never draw from a balance.
func (t LeaveType) IsBalanceExempt() bool { return t == LeaveTypeUnpaid }

type DayType string

const (
	DayTypeFull DayType = "Full Day"
	DayTypeHalf DayType = "Half Day"
)

type HalfDayVariant string

const (
	HalfDayFirst  HalfDayVariant = "1st Half"
	HalfDaySecond HalfDayVariant = "2nd Half"
)

// Request is a leave application as typed into the form. Zero values mean
// the field was left empty.
type Request struct {
	Type           LeaveType
	StartDate      datekey.Key
	EndDate        datekey.Key
	DayType        DayType
	HalfDayVariant HalfDayVariant
}

// Balance maps a leave type to its remaining days.
type Balance map[LeaveType]decimal.Decimal

// ValidationResult is the accept/reject outcome of a leave request along with
// the number of days it would consume.
type ValidationResult struct {
	validator.Result
	RequiredDays decimal.Decimal `json:"required_days"`
}

// Record is an approved leave as stored by the server layer.
type Record struct {
	ID         string
	EmployeeID string
	Type       LeaveType
	DayType    DayType
	StartDate  datekey.Key
	EndDate    datekey.Key
}

// Label is the calendar text for the leave, "Type - DayType" when a day type is set.
func (r Record) Label() string {
	label := string(r.Type)
	if label == "" {
		label = "Leave"
	}
	if r.DayType != "" {
		label += " - " + string(r.DayType)
	}
	return label
}
