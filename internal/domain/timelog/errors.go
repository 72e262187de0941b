package timelog

import "errors"

var ErrInvalidPeriod = errors.New("invalid time log period")
