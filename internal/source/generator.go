package source

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"weekgrid/internal/domain"
)

// TextGenerator is a text model that answers a system and user prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, system, user string) (string, error)
}

// Generator asks a TextGenerator for a schedule and validates the reply.
type Generator struct {
	text TextGenerator
	log  *zap.Logger
}

// NewGenerator returns a Generator using text. A nil logger discards logs.
func NewGenerator(text TextGenerator, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{text: text, log: log}
}

// Generate sends description to the model and decodes the reply strictly.
// Replies that are not a valid schedule document are rejected, never repaired.
func (g *Generator) Generate(ctx context.Context, description string, cal domain.Calendar) (domain.WeekInput, error) {
	reply, err := g.text.GenerateText(ctx, systemPrompt(cal), userPrompt(description))
	if err != nil {
		return nil, fmt.Errorf("generate schedule: %w", err)
	}
	body := stripFences(reply)
	if body == "" {
		return nil, ErrEmptyResponse
	}
	g.log.Debug("model reply received", zap.Int("bytes", len(body)))

	week, err := DecodeBytes([]byte(body), cal)
	if err != nil {
		g.log.Warn("model reply rejected", zap.Error(err))
		return nil, fmt.Errorf("model reply: %w", err)
	}
	return week, nil
}

// Compile-time assertion that Generator implements domain.ScheduleGenerator.
var _ domain.ScheduleGenerator = (*Generator)(nil)
