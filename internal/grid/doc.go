// Package grid renders a WeekInput as a fixed-width weekly calendar.
//
// # Pipeline
//
//  1. Rotate the calendar so the requested start day is the first column.
//  2. Derive the half-open hour range [Earliest, Latest) from every interval
//     on every calendar day. Absent days contribute nothing; a week with no
//     intervals at all fails with domain.ErrEmptySchedule.
//  3. Mark each (hour, day) cell under a Policy: Coarse marks whole hours,
//     Fine also distinguishes blocks that start or end on the half hour.
//  4. Serialize the marks as a bordered table using box-drawing characters.
//
// Every step is a pure function of its inputs, so rendering the same week
// twice yields byte-identical output and renders may run concurrently.
package grid
