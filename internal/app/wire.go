package app

import (
	"context"

	"go.uber.org/zap"

	"weekgrid/internal/export"
	"weekgrid/internal/source"
)

// New constructs the dependency graph from cfg. A nil logger is built from cfg.
func New(cfg Config, log *zap.Logger) (*App, error) {
	opts, err := cfg.RenderOptions()
	if err != nil {
		return nil, err
	}
	if log == nil {
		if log, err = NewLogger(cfg); err != nil {
			return nil, err
		}
	}

	a := &App{
		Config:  cfg,
		Log:     log,
		Options: opts,
		Text:    export.TextFile{},
		PDF:     export.PDFFile{FontPath: cfg.PDFFont, FontSize: cfg.PDFFontSize},
	}
	a.newText = func(ctx context.Context) (source.TextGenerator, func() error, error) {
		c, err := source.NewGeminiClient(ctx, cfg.Gemini(), opts.Calendar)
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil
	}
	return a, nil
}

// WithTextGenerator replaces the model client, e.g. with a fake in tests.
func (a *App) WithTextGenerator(tg source.TextGenerator) *App {
	a.newText = func(context.Context) (source.TextGenerator, func() error, error) {
		return tg, func() error { return nil }, nil
	}
	return a
}
