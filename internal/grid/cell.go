package grid

import (
	"fmt"
	"strings"

	"weekgrid/internal/domain"
)

// Mark is what a single (hour, day) cell shows.
type Mark int

const (
	Empty Mark = iota
	Full
	LowerHalf // block begins at half past
	UpperHalf // block ends at half past the following hour
)

func (m Mark) String() string {
	switch m {
	case Empty:
		return "empty"
	case Full:
		return "full"
	case LowerHalf:
		return "lower-half"
	case UpperHalf:
		return "upper-half"
	default:
		return fmt.Sprintf("Mark(%d)", int(m))
	}
}

// Policy selects the cell granularity.
type Policy int

const (
	// Coarse marks whole hours only.
	Coarse Policy = iota
	// Fine tells apart blocks that start or end on the half hour.
	Fine
)

// ParsePolicy accepts "coarse" or "fine", ignoring case.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "coarse":
		return Coarse, nil
	case "fine":
		return Fine, nil
	default:
		return Coarse, fmt.Errorf("unknown policy %q (want coarse or fine)", s)
	}
}

func (p Policy) String() string {
	if p == Fine {
		return "fine"
	}
	return "coarse"
}

// Cell decides the mark for hour on a day. Intervals are scanned in their
// given order and the first one that covers the hour decides; overlaps are
// never merged.
//
// Under Fine, a block that both starts at half past this hour and ends at
// half past the next one is shown as LowerHalf: the start check runs first.
func (p Policy) Cell(hour int, day domain.DaySchedule) Mark {
	for i := 0; i < day.Len(); i++ {
		iv := day.At(i)
		spans := iv.Start.Hour <= hour && hour < iv.End.Hour
		if p == Fine && spans {
			if iv.Start.Hour == hour && iv.Start.Minute == 30 {
				return LowerHalf
			}
			if iv.End.Hour == hour+1 && iv.End.Minute == 30 {
				return UpperHalf
			}
		}
		if spans || (iv.Start.Hour == hour && iv.Start.Minute == 0) {
			return Full
		}
	}
	return Empty
}
