// Package domain defines the schedule model shared across weekgrid.
//
// It contains plain value types (WallTime, Interval, DaySchedule, WeekInput,
// Calendar), the error kinds raised while parsing or rotating them, and the
// contracts used to talk to the schedule source and the exporter.
//
// # Absence
//
// A DaySchedule is either Absent or Present with at least one Interval.
// Absence is structural: there is no magic midnight interval standing in for a
// missing day, so an explicit 12:00 AM interval is always real data.
package domain
