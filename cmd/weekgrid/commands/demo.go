package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"weekgrid/internal/domain"
)

func demoWeek() domain.WeekInput {
	nineToFive := domain.Present(domain.MustInterval("09:00 AM", "05:00 PM"))
	return domain.WeekInput{
		"Monday":    nineToFive,
		"Wednesday": nineToFive,
		"Thursday":  nineToFive,
		"Friday":    domain.Present(domain.MustInterval("09:00 AM", "01:00 PM")),
		"Tuesday": domain.Present(
			domain.MustInterval("10:00 AM", "04:00 PM"),
			domain.MustInterval("06:00 PM", "08:00 PM"),
		),
	}
}

func demoMidweek() domain.WeekInput {
	return domain.WeekInput{
		"Wednesday": domain.Present(domain.MustInterval("12:00 PM", "09:00 PM")),
		"Friday":    domain.Present(domain.MustInterval("08:00 AM", "04:00 PM")),
	}
}

// demo: render two sample schedules.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Render the built-in sample schedules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			out, err := appCtx.Render(demoWeek())
			if err != nil {
				return err
			}
			fmt.Fprintln(w, out)
			fmt.Fprintln(w)

			out, err = appCtx.RenderFrom(demoMidweek(), "Wednesday")
			if err != nil {
				return err
			}
			fmt.Fprintln(w, out)
			return nil
		},
	}
}
