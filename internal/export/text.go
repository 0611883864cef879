package export

import (
	"fmt"
	"strings"

	"weekgrid/internal/domain"
)

// TextFile writes grids as plain UTF-8 text ending in a newline.
type TextFile struct{}

// Export writes grid to path.
func (TextFile) Export(path string, grid string) error {
	if !strings.HasSuffix(grid, "\n") {
		grid += "\n"
	}
	if err := writeFile(path, []byte(grid), 0o644); err != nil {
		return fmt.Errorf("export text %s: %w", path, err)
	}
	return nil
}

// Compile-time assertion that TextFile implements domain.Exporter.
var _ domain.Exporter = TextFile{}
