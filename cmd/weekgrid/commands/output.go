package commands

import (
	"fmt"
	"io"
)

var (
	outPath string
	pdfPath string
)

// emit prints the grid and writes the requested exports.
func emit(w io.Writer, grid string) error {
	if _, err := fmt.Fprintln(w, grid); err != nil {
		return err
	}
	if outPath != "" {
		if err := appCtx.Export(appCtx.Text, outPath, grid); err != nil {
			return err
		}
	}
	if pdfPath != "" {
		if err := appCtx.Export(appCtx.PDF, pdfPath, grid); err != nil {
			return err
		}
	}
	return nil
}
