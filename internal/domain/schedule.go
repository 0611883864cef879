package domain

import (
	"fmt"
	"slices"
)

// Interval is one contiguous block within a single day.
type Interval struct {
	Start WallTime
	End   WallTime
}

// ParseInterval parses both ends of a block.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseWallTime(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseWallTime(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// MustInterval is ParseInterval for literals known to be valid.
func MustInterval(start, end string) Interval {
	iv, err := ParseInterval(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

func (iv Interval) String() string {
	return fmt.Sprintf("%s-%s", iv.Start, iv.End)
}

// DaySchedule is either Absent or an ordered, non-empty list of intervals.
// The zero value is Absent.
type DaySchedule struct {
	intervals []Interval
}

// Absent returns the schedule of a day with no data.
func Absent() DaySchedule { return DaySchedule{} }

// Present returns a schedule holding the given intervals in order.
// With no intervals it is Absent.
func Present(intervals ...Interval) DaySchedule {
	if len(intervals) == 0 {
		return Absent()
	}
	return DaySchedule{intervals: slices.Clone(intervals)}
}

// IsAbsent reports whether the day has no intervals.
func (d DaySchedule) IsAbsent() bool { return len(d.intervals) == 0 }

// Intervals returns a copy of the day's intervals in their given order.
func (d DaySchedule) Intervals() []Interval { return slices.Clone(d.intervals) }

// Len is the number of intervals.
func (d DaySchedule) Len() int { return len(d.intervals) }

// At returns the i-th interval.
func (d DaySchedule) At(i int) Interval { return d.intervals[i] }

// WeekInput maps canonical day labels to their schedules. Missing days are Absent.
type WeekInput map[string]DaySchedule

// Day returns the schedule for label, Absent when the label is not present.
func (w WeekInput) Day(label string) DaySchedule { return w[label] }

// Canonical re-keys w by the labels of cal, matching keys ignoring case.
// A key spelled exactly like its label wins over case variants; among
// variants the first in sorted order wins. Keys outside cal are dropped.
func (w WeekInput) Canonical(cal Calendar) WeekInput {
	keys := make([]string, 0, len(w))
	for k := range w {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make(WeekInput, len(cal))
	for _, k := range keys {
		label, ok := cal.Lookup(k)
		if !ok {
			continue
		}
		if _, taken := out[label]; k == label || !taken {
			out[label] = w[k]
		}
	}
	return out
}

// HasIntervals reports whether any day in cal carries at least one interval.
func (w WeekInput) HasIntervals(cal Calendar) bool {
	for _, day := range cal {
		if !w.Day(day).IsAbsent() {
			return true
		}
	}
	return false
}
