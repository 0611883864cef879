package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"weekgrid/internal/domain"
)

const (
	defaultFontSize = 9.0
	pageMargin      = 10.0 // mm
	fontFamily      = "grid"
)

// PDFFile writes grids to A4 landscape pages in a monospace font.
//
// With FontPath set to a UTF-8 TrueType monospace font the grid is written as
// is. Otherwise the built-in Courier font is used and box-drawing and block
// characters are replaced by ASCII look-alikes it can display.
type PDFFile struct {
	FontPath string
	FontSize float64
}

// Export lays out grid and writes it to path.
func (p PDFFile) Export(path string, grid string) error {
	b, err := p.Bytes(grid)
	if err != nil {
		return err
	}
	if err := writeFile(path, b, 0o644); err != nil {
		return fmt.Errorf("export pdf %s: %w", path, err)
	}
	return nil
}

// Bytes returns the PDF document for grid.
func (p PDFFile) Bytes(grid string) ([]byte, error) {
	size := p.FontSize
	if size <= 0 {
		size = defaultFontSize
	}

	doc := fpdf.New("L", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)

	text := grid
	if p.FontPath != "" {
		doc.AddUTF8Font(fontFamily, "", p.FontPath)
		doc.SetFont(fontFamily, "", size)
	} else {
		doc.SetFont("Courier", "", size)
		text = ASCII(grid)
	}
	doc.AddPage()

	// Points to millimetres, with a little leading.
	lineHeight := size * 0.3528 * 1.15
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		doc.CellFormat(0, lineHeight, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

var asciiReplacer = strings.NewReplacer(
	"─", "-", "═", "=", "│", "|",
	"╒", "+", "╤", "+", "╕", "+",
	"╞", "+", "╪", "+", "╡", "+",
	"├", "+", "┼", "+", "┤", "+",
	"╘", "+", "╧", "+", "╛", "+",
	"█", "#", "▄", ".", "▀", "'",
)

// ASCII replaces the grid's box-drawing and block characters one for one, so
// column alignment is kept.
func ASCII(grid string) string { return asciiReplacer.Replace(grid) }

// Compile-time assertion that PDFFile implements domain.Exporter.
var _ domain.Exporter = PDFFile{}
