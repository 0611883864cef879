package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"weekgrid/internal/app"
)

var (
	configPath string
	logLevel   string
	startDay   string
	policy     string
	days       []string

	appCtx *app.App
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "weekgrid",
		Short:        "Render weekly schedules as hour-by-day grids",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg)

			appCtx, err = app.New(cfg, nil)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "config file (default ./weekgrid.yaml or ~/.config/weekgrid/weekgrid.yaml)")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&startDay, "start-day", "", "first column of the grid (default first configured day)")
	pf.StringVar(&policy, "policy", "", "cell policy: coarse or fine")
	pf.StringSliceVar(&days, "days", nil, "comma-separated day labels (default Monday..Friday)")

	root.AddCommand(renderCmd(), generateCmd(), demoCmd(), fingerprintCmd())
	return root
}

// applyFlags lets explicitly set flags win over file and environment values.
func applyFlags(cmd *cobra.Command, cfg *app.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("start-day") {
		cfg.StartDay = strings.TrimSpace(startDay)
	}
	if flags.Changed("policy") {
		cfg.Policy = policy
	}
	if flags.Changed("days") {
		cfg.Days = days
	}
}
