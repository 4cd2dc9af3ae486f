package datemath

import (
	"errors"
	"time"
)

// ParseResult holds the result of parsing a natural-language date expression.
type ParseResult struct {
	AbsoluteTime time.Time
	IsAllDay     bool // true when the expression carried no clock time
}

// ErrUnparsable is returned when the text does not contain a recognizable
// date expression. Callers treat this as "no due date", not as a failure.
var ErrUnparsable = errors.New("datemath: unparsable date expression")
