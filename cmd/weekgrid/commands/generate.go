package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"weekgrid/internal/source"
)

// generate <description>: ask the model for a schedule and render it.
func generateCmd() *cobra.Command {
	var savePath string

	cmd := &cobra.Command{
		Use:   "generate <description>",
		Short: "Generate a schedule from a description and render it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.Config.GeminiAPIKey == "" {
				return fmt.Errorf("no API key configured. set GEMINI_API_KEY")
			}
			week, err := appCtx.Generate(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			if savePath != "" {
				b, err := source.Encode(week, appCtx.Options.Calendar)
				if err != nil {
					return err
				}
				if err := appCtx.Text.Export(savePath, string(b)); err != nil {
					return err
				}
				appCtx.Log.Info("schedule saved", zap.String("path", savePath))
			}

			out, err := appCtx.Render(week)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&savePath, "save", "", "write the generated schedule document to this file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "also write the grid to this text file")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also write the grid to this PDF file")
	return cmd
}
