package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySchedule is returned when no day carries any interval, so the
// visible hour range cannot be derived.
var ErrEmptySchedule = errors.New("schedule has no intervals on any day")

// ErrInvalidCalendar is returned for an empty calendar or one with repeated labels.
var ErrInvalidCalendar = errors.New("invalid calendar")

// ParseError reports a time string that is not in "hh:mm AM/PM" form.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse time %q: %s", e.Input, e.Reason)
}

// InvalidDayError reports a day label that is not part of the active calendar.
type InvalidDayError struct {
	Day   string
	Known []string
}

func (e *InvalidDayError) Error() string {
	return fmt.Sprintf("unknown day %q (want one of %s)", e.Day, strings.Join(e.Known, ", "))
}
