package app

import (
	"context"

	"go.uber.org/zap"

	"weekgrid/internal/digest"
	"weekgrid/internal/domain"
	"weekgrid/internal/grid"
	"weekgrid/internal/source"
)

// App bundles the configured collaborators for the CLI.
type App struct {
	Config  Config
	Log     *zap.Logger
	Options grid.Options
	Text    domain.Exporter
	PDF     domain.Exporter

	// newText builds the model client on first use; tests replace it.
	newText func(ctx context.Context) (source.TextGenerator, func() error, error)
}

// Render renders week with the configured options and logs its fingerprint.
func (a *App) Render(week domain.WeekInput) (string, error) {
	return a.render(week, a.Options)
}

// RenderFrom is Render with the first column set to startDay instead of the
// configured start day.
func (a *App) RenderFrom(week domain.WeekInput, startDay string) (string, error) {
	opts := a.Options
	opts.StartDay = startDay
	return a.render(week, opts)
}

func (a *App) render(week domain.WeekInput, opts grid.Options) (string, error) {
	out, err := grid.Render(week, opts)
	if err != nil {
		return "", err
	}
	a.Log.Info("grid rendered",
		zap.Strings("days", opts.Calendar),
		zap.String("start_day", opts.StartDay),
		zap.Stringer("policy", opts.Policy),
		zap.String("fingerprint", digest.String(out)),
	)
	return out, nil
}

// Generate asks the model for a schedule matching description.
func (a *App) Generate(ctx context.Context, description string) (domain.WeekInput, error) {
	text, closeFn, err := a.newText(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := closeFn(); err != nil {
			a.Log.Warn("close model client", zap.Error(err))
		}
	}()

	a.Log.Info("requesting schedule from model", zap.String("model", a.Config.GeminiModel))
	var gen domain.ScheduleGenerator = source.NewGenerator(text, a.Log)
	return gen.Generate(ctx, description, a.Options.Calendar)
}

// Export writes out with the named exporter and logs the result.
func (a *App) Export(exp domain.Exporter, path, out string) error {
	if err := exp.Export(path, out); err != nil {
		return err
	}
	a.Log.Info("grid exported", zap.String("path", path), zap.String("fingerprint", digest.String(out)))
	return nil
}
