package grid

import "weekgrid/internal/domain"

// Bounds is the half-open hour span [Earliest, Latest) covered by the grid rows.
type Bounds struct {
	Earliest int
	Latest   int
}

// DeriveBounds scans every interval of every calendar day. Earliest is the
// smallest start hour and Latest is one past the largest end hour.
// Week keys are matched to cal ignoring case.
func DeriveBounds(week domain.WeekInput, cal domain.Calendar) (Bounds, error) {
	week = week.Canonical(cal)
	var b Bounds
	found := false
	for _, day := range cal {
		sched := week.Day(day)
		for i := 0; i < sched.Len(); i++ {
			iv := sched.At(i)
			if !found {
				b = Bounds{Earliest: iv.Start.Hour, Latest: iv.End.Hour + 1}
				found = true
				continue
			}
			b.Earliest = min(b.Earliest, iv.Start.Hour)
			b.Latest = max(b.Latest, iv.End.Hour+1)
		}
	}
	if !found {
		return Bounds{}, domain.ErrEmptySchedule
	}
	return b, nil
}

// Hours lists the row hours in ascending order.
func (b Bounds) Hours() []int {
	if b.Latest <= b.Earliest {
		return nil
	}
	hours := make([]int, 0, b.Latest-b.Earliest)
	for h := b.Earliest; h < b.Latest; h++ {
		hours = append(hours, h)
	}
	return hours
}
