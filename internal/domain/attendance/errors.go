package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrEmployeeRequired   = errors.New("employee id is required")
)
