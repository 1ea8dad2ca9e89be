package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// TextModel is the provider seen as an opaque text-in/text-out service
type TextModel interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

var errEmptyResponse = errors.New("empty response from Gemini")

// GenAIModel talks to Gemini through the genai SDK. The same type serves the
// Gemini API (API key) and Vertex AI (service account) backends.
type GenAIModel struct {
	client *genai.Client
	model  string
}

// NewStudioModel creates a model on the Gemini API backend
func NewStudioModel(ctx context.Context, apiKey, model string) (*GenAIModel, error) {
	return newGenAIModel(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model)
}

// NewVertexModel creates a model on the Vertex AI backend using application default credentials
func NewVertexModel(ctx context.Context, project, location, model string) (*GenAIModel, error) {
	return newGenAIModel(ctx, &genai.ClientConfig{
		Project:  project,
		Location: location,
		Backend:  genai.BackendVertexAI,
	}, model)
}

func newGenAIModel(ctx context.Context, cc *genai.ClientConfig, model string) (*GenAIModel, error) {
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GenAIModel{client: client, model: model}, nil
}

// GenerateText sends one prompt and returns the concatenated text parts
func (m *GenAIModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	text := extractText(resp)
	if text == "" {
		return "", errEmptyResponse
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		var b strings.Builder
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			b.WriteString(part.Text)
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
	return ""
}
