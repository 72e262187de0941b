package timeline

import "errors"

var ErrInvalidWindow = errors.New("timeline window must satisfy 0 <= start < end <= 24")
