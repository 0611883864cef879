// Package export writes rendered grids to files.
//
// TextFile stores the grid as UTF-8 text. PDFFile lays it out in a monospace
// font, one grid line per text line, so column alignment survives. Both write
// through a temp file that is renamed into place, so a failed export never
// leaves a truncated file behind.
package export
