package ai

import (
	"LostFound/internal/model"
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-3-flash-preview"

// contentGenerator - часть genai.Models, используемая клиентом.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini uses Google's Gemini API for image descriptions and scoring.
type Gemini struct {
	models contentGenerator
	model  string
}

// NewGemini creates a Gemini client. An empty model selects the default one.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return newGemini(client.Models, model), nil
}

func newGemini(models contentGenerator, model string) *Gemini {
	if model == "" {
		model = defaultGeminiModel
	}
	return &Gemini{models: models, model: model}
}

func (g *Gemini) generate(ctx context.Context, system string, parts []*genai.Part) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := g.models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if result == nil || len(result.Candidates) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}
	return strings.TrimSpace(result.Text()), nil
}

// DescribeImage implements Describer.
func (g *Gemini) DescribeImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(describePrompt),
		{InlineData: &genai.Blob{Data: data, MIMEType: mimeType}},
	}
	return g.generate(ctx, describeSystemPrompt, parts)
}

// Score implements Scorer. Ответ без числа даёт 0 без ошибки.
func (g *Gemini) Score(ctx context.Context, lost, found model.Item) (float64, error) {
	text, err := g.generate(ctx, scoreSystemPrompt, []*genai.Part{
		genai.NewPartFromText(ComparisonPrompt(lost, found)),
	})
	if err != nil {
		return 0, err
	}
	return ParseScore(text), nil
}
