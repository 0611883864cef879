package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"weekgrid/internal/domain"
)

// DefaultGeminiModel is used when GeminiConfig.Model is empty.
const DefaultGeminiModel = "gemini-2.0-flash-001"

// GeminiConfig holds the model parameters.
type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// GeminiClient is a TextGenerator backed by the Gemini API. It asks for JSON
// replies shaped like a schedule document for the calendar it was built with.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient connects to Gemini with cfg.APIKey.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig, cal domain.Calendar) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is not set")
	}
	name := cfg.Model
	if name == "" {
		name = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel(name)
	model.SetTemperature(cfg.Temperature)
	model.SetTopP(0.95)
	model.SetTopK(20)
	model.SetCandidateCount(1)
	if cfg.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(cfg.MaxOutputTokens)
	}
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = responseSchema(cal)

	return &GeminiClient{client: client, model: model}, nil
}

// GenerateText sends the prompts and concatenates the text parts of the first candidate.
func (g *GeminiClient) GenerateText(ctx context.Context, system, user string) (string, error) {
	// The model is shared, so the system prompt travels on a per-call copy.
	m := *g.model
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	resp, err := m.GenerateContent(ctx, genai.Text(user))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

// Close releases the underlying connection.
func (g *GeminiClient) Close() error { return g.client.Close() }

func responseSchema(cal domain.Calendar) *genai.Schema {
	clock := &genai.Schema{Type: genai.TypeString, Description: "time, format hh:mm AM/PM"}
	day := &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeArray, Items: clock, Description: "[start, end]"},
	}
	props := make(map[string]*genai.Schema, len(cal))
	for _, d := range cal {
		props[d] = day
	}
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: props,
		Required:   append([]string(nil), cal...),
	}
}

// Compile-time assertion that GeminiClient implements TextGenerator.
var _ TextGenerator = (*GeminiClient)(nil)
