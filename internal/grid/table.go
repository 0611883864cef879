package grid

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// width measures display columns. East Asian ambiguous characters (the box
// and block elements) count as one column regardless of the host locale.
var width = &runewidth.Condition{EastAsianWidth: false}

// border describes one horizontal rule of the table.
type border struct {
	left, fill, join, right string
}

var (
	topBorder    = border{"╒", "═", "╤", "╕"}
	headBorder   = border{"╞", "═", "╪", "╡"}
	rowBorder    = border{"├", "─", "┼", "┤"}
	bottomBorder = border{"╘", "═", "╧", "╛"}
)

const vertical = "│"

// FormatTable lays out header and rows as a bordered grid. Each column is as
// wide as its widest cell; cells are left aligned with one space of padding.
// Short rows are padded with empty cells. The result has no trailing newline.
func FormatTable(header []string, rows [][]string) string {
	cols := len(header)
	for _, r := range rows {
		cols = max(cols, len(r))
	}
	widths := make([]int, cols)
	measure := func(cells []string) {
		for i, c := range cells {
			widths[i] = max(widths[i], width.StringWidth(c))
		}
	}
	measure(header)
	for _, r := range rows {
		measure(r)
	}

	var sb strings.Builder
	writeBorder(&sb, topBorder, widths)
	writeRow(&sb, header, widths)
	for i, r := range rows {
		if i == 0 {
			writeBorder(&sb, headBorder, widths)
		} else {
			writeBorder(&sb, rowBorder, widths)
		}
		writeRow(&sb, r, widths)
	}
	writeBorder(&sb, bottomBorder, widths)
	return strings.TrimSuffix(sb.String(), "\n")
}

func writeBorder(sb *strings.Builder, b border, widths []int) {
	sb.WriteString(b.left)
	for i, w := range widths {
		if i > 0 {
			sb.WriteString(b.join)
		}
		sb.WriteString(strings.Repeat(b.fill, w+2))
	}
	sb.WriteString(b.right)
	sb.WriteByte('\n')
}

func writeRow(sb *strings.Builder, cells []string, widths []int) {
	sb.WriteString(vertical)
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteByte(' ')
		sb.WriteString(width.FillRight(cell, w))
		sb.WriteByte(' ')
		sb.WriteString(vertical)
	}
	sb.WriteByte('\n')
}
