package domain

import (
	"fmt"
	"strings"
)

// Calendar is an ordered set of day labels used as grid columns.
type Calendar []string

var (
	// WorkWeek is the default Monday to Friday calendar.
	WorkWeek = Calendar{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	// FullWeek adds the weekend.
	FullWeek = Calendar{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
)

// DefaultStartDay is used when no start day is requested.
const DefaultStartDay = "Monday"

// NewCalendar builds a calendar from labels, trimming whitespace.
// Labels must be non-empty and unique ignoring case.
func NewCalendar(labels []string) (Calendar, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("%w: no days", ErrInvalidCalendar)
	}
	cal := make(Calendar, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			return nil, fmt.Errorf("%w: empty day label", ErrInvalidCalendar)
		}
		if _, dup := cal.Lookup(l); dup {
			return nil, fmt.Errorf("%w: duplicate day %q", ErrInvalidCalendar, l)
		}
		cal = append(cal, l)
	}
	return cal, nil
}

// Lookup returns the canonical label matching name, ignoring case and
// surrounding whitespace.
func (c Calendar) Lookup(name string) (string, bool) {
	i := c.index(name)
	if i < 0 {
		return "", false
	}
	return c[i], true
}

// Rotate returns the calendar reordered to begin at start, wrapping around
// and keeping relative order. An empty start selects the first day.
func (c Calendar) Rotate(start string) (Calendar, error) {
	if strings.TrimSpace(start) == "" {
		return append(Calendar(nil), c...), nil
	}
	i := c.index(start)
	if i < 0 {
		return nil, &InvalidDayError{Day: start, Known: append([]string(nil), c...)}
	}
	out := make(Calendar, 0, len(c))
	out = append(out, c[i:]...)
	return append(out, c[:i]...), nil
}

func (c Calendar) index(name string) int {
	name = strings.TrimSpace(name)
	for i, d := range c {
		if strings.EqualFold(d, name) {
			return i
		}
	}
	return -1
}
