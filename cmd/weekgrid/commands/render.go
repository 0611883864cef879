package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"weekgrid/internal/domain"
	"weekgrid/internal/source"
)

// render <schedule.json|->: render a schedule document.
func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <schedule.json|->",
		Short: "Render a schedule document as a grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := loadWeek(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			out, err := appCtx.Render(week)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "also write the grid to this text file")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also write the grid to this PDF file")
	return cmd
}

// loadWeek decodes the schedule document at path, or from stdin for "-".
func loadWeek(stdin io.Reader, path string) (domain.WeekInput, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	week, err := source.Decode(r, appCtx.Options.Calendar)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	appCtx.Log.Info("schedule loaded", zap.String("path", path), zap.Int("days", len(week)))
	return week, nil
}
