// internal/llm/gemini.go
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	appErrors "github.com/unclebandit/leadplan-backend/internal/errors"
)

// TextGenerator is the single outbound collaborator contract: one prompt in,
// free text out. The service layer depends on this so tests can substitute a
// canned generator.
type TextGenerator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

const (
	defaultModel = "gemini-2.5-flash"
	// Low temperature keeps the output close to the requested JSON shape.
	temperature = 0.2
)

// Gemini calls the Gemini chat-completion API. One GenerateContent call per
// request, no retries, no streaming.
type Gemini struct {
	APIKey string
	Model  string
}

func NewGemini(apiKey, model string) *Gemini {
	if model == "" {
		model = defaultModel
	}
	return &Gemini{APIKey: apiKey, Model: model}
}

func (g *Gemini) Generate(ctx context.Context, system, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		return "", appErrors.NewModelCall(g.Model, fmt.Errorf("init client: %w", err))
	}
	defer client.Close()

	m := client.GenerativeModel(g.Model)
	m.SetTemperature(temperature)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(system)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", appErrors.NewModelCall(g.Model, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", appErrors.NewModelCall(g.Model, fmt.Errorf("empty response"))
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}
