package grid

import "strings"

// DefaultCellWidth is how many block characters make up a covered cell.
const DefaultCellWidth = 10

// Glyphs maps marks to cell text. Empty cells always render as "".
type Glyphs struct {
	Full      string
	LowerHalf string
	UpperHalf string
}

// BlockGlyphs repeats the Unicode block elements width times.
func BlockGlyphs(width int) Glyphs {
	if width <= 0 {
		width = DefaultCellWidth
	}
	return Glyphs{
		Full:      strings.Repeat("█", width),
		LowerHalf: strings.Repeat("▄", width),
		UpperHalf: strings.Repeat("▀", width),
	}
}

// For returns the text for m.
func (g Glyphs) For(m Mark) string {
	switch m {
	case Full:
		return g.Full
	case LowerHalf:
		return g.LowerHalf
	case UpperHalf:
		return g.UpperHalf
	default:
		return ""
	}
}
