package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"weekgrid/internal/digest"
)

// fingerprint <schedule.json|->: print the digest of the rendered grid.
func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <schedule.json|->",
		Short: "Print the fingerprint of a schedule's rendered grid",
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
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", digest.String(out))
			return nil
		},
	}
}
