package domain

import (
	"errors"
	"strings"
	"time"
)

// clockLayout is the accepted "hh:mm AM/PM" form; the hour may omit its leading zero.
const clockLayout = "3:04 PM"

// labelLayout renders a WallTime with a zero-padded hour, e.g. "09:30 AM".
const labelLayout = "03:04 PM"

// WallTime is a time of day without date or zone.
type WallTime struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// ParseWallTime parses a 12-hour clock string such as "9:00 AM" or "12:30 pm".
//
// 12:xx AM maps to hour 0 and 12:xx PM to hour 12. Anything else that does not
// match the layout fails with a *ParseError.
func ParseWallTime(s string) (WallTime, error) {
	in := strings.ToUpper(strings.TrimSpace(s))
	if in == "" {
		return WallTime{}, &ParseError{Input: s, Reason: "empty time"}
	}
	// time.Parse accepts hour 0 on a 12-hour clock; the clock face starts at 1.
	if strings.HasPrefix(in, "0:") || strings.HasPrefix(in, "00:") {
		return WallTime{}, &ParseError{Input: s, Reason: "hour out of range"}
	}
	t, err := time.Parse(clockLayout, in)
	if err != nil {
		return WallTime{}, &ParseError{Input: s, Reason: parseReason(err)}
	}
	return WallTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// MustParseWallTime is ParseWallTime for literals known to be valid.
func MustParseWallTime(s string) WallTime {
	t, err := ParseWallTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Before reports whether t is strictly earlier in the day than u.
func (t WallTime) Before(u WallTime) bool { return t.Minutes() < u.Minutes() }

// Minutes returns minutes since midnight.
func (t WallTime) Minutes() int { return t.Hour*60 + t.Minute }

// String formats t as "hh:mm AM/PM".
func (t WallTime) String() string {
	return time.Date(0, time.January, 1, t.Hour, t.Minute, 0, 0, time.UTC).Format(labelLayout)
}

// HourLabel formats the top of hour h as a row label; hour 0 is "12:00 AM".
func HourLabel(h int) string { return WallTime{Hour: h}.String() }

func parseReason(err error) string {
	var pe *time.ParseError
	if errors.As(err, &pe) && pe.Message != "" {
		return strings.TrimPrefix(pe.Message, ": ")
	}
	return `want "hh:mm AM/PM"`
}
