package report

import "errors"

var ErrInvalidMonth = errors.New("invalid report month")
