// Package ai содержит обращения к языковым моделям: описание фотографии
// и оценку сходства двух заявок.
package ai

import (
	"LostFound/internal/model"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lithammer/dedent"
)

// Describer превращает фотографию в текстовое описание вещи.
type Describer interface {
	DescribeImage(ctx context.Context, data []byte, mimeType string) (string, error)
}

// Scorer оценивает сходство потерянной и найденной вещи числом от 0 до 100.
type Scorer interface {
	Score(ctx context.Context, lost, found model.Item) (float64, error)
}

// Client объединяет оба контракта: у всех провайдеров они реализованы вместе.
type Client interface {
	Describer
	Scorer
}

const noDescription = "No description"

const describeSystemPrompt = "You are an image analysis expert. Provide detailed descriptions."

const describePrompt = "Describe this item in extreme detail, focusing on color, shape, size, brand, unique features, and condition."

const scoreSystemPrompt = "You are a matching expert. Compare items and provide a similarity score."

var comparisonTemplate = strings.TrimSpace(dedent.Dedent(`
	Compare these two items and provide ONLY a similarity score from 0-100.

	Lost Item:
	%s

	Found Item:
	%s

	Respond with ONLY a number between 0-100 representing similarity percentage.
`))

// ComparisonPrompt строит детерминированный текст запроса для пары заявок.
func ComparisonPrompt(lost, found model.Item) string {
	return fmt.Sprintf(comparisonTemplate, itemBlock(lost), itemBlock(found))
}

func itemBlock(it model.Item) string {
	desc := noDescription
	if it.ImageDescription != nil && strings.TrimSpace(*it.ImageDescription) != "" {
		desc = strings.TrimSpace(*it.ImageDescription)
	}
	return strings.Join([]string{
		"Title: " + it.Title,
		"Category: " + it.Category,
		"Description: " + it.Description,
		"Location: " + it.Location,
		"Date: " + it.Date,
		"Image Description: " + desc,
	}, "\n")
}

var numberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ParseScore извлекает первое число из ответа модели и ограничивает его [0, 100].
// Ответ без числа даёт 0.
func ParseScore(text string) float64 {
	m := numberRe.FindString(text)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return min(max(v, 0), 100)
}

// ErrDisabled возвращается, когда провайдер LLM не настроен.
var ErrDisabled = errors.New("llm provider is disabled")

// Disabled - заглушка для запуска без ключей API.
type Disabled struct{}

func (Disabled) DescribeImage(context.Context, []byte, string) (string, error) {
	return "", ErrDisabled
}

func (Disabled) Score(context.Context, model.Item, model.Item) (float64, error) {
	return 0, ErrDisabled
}

// Options - параметры выбора провайдера.
type Options struct {
	Provider     string // gemini, openai или none
	Model        string
	GeminiAPIKey string
	OpenAIAPIKey string
}

// New создаёт клиента выбранного провайдера.
func New(ctx context.Context, opts Options) (Client, error) {
	switch opts.Provider {
	case "gemini":
		if opts.GeminiAPIKey == "" {
			return nil, fmt.Errorf("gemini: api key is required")
		}
		return NewGemini(ctx, opts.GeminiAPIKey, opts.Model)
	case "openai":
		if opts.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai: api key is required")
		}
		return NewOpenAI(opts.OpenAIAPIKey, opts.Model), nil
	case "", "none":
		return Disabled{}, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", opts.Provider)
	}
}
