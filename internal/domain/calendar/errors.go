package calendar

import "errors"

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year out of range")
)
