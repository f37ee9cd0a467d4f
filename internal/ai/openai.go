package ai

import (
	"LostFound/internal/model"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultOpenAIModel = "gpt-4o-mini"

// chatCompleter - часть openai.ChatCompletionService, используемая клиентом.
type chatCompleter interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// OpenAI uses OpenAI chat completions for image descriptions and scoring.
type OpenAI struct {
	chat  chatCompleter
	model string
}

// NewOpenAI creates an OpenAI client. An empty model selects the default one.
func NewOpenAI(apiKey, model string) *OpenAI {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return newOpenAI(&client.Chat.Completions, model)
}

func newOpenAI(chat chatCompleter, model string) *OpenAI {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAI{chat: chat, model: model}
}

func (o *OpenAI) complete(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion) (string, error) {
	resp, err := o.chat.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.model),
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// DescribeImage implements Describer.
func (o *OpenAI) DescribeImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
	return o.complete(ctx, []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(describeSystemPrompt),
		openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
			openai.TextContentPart(describePrompt),
			openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: dataURL}),
		}),
	})
}

// Score implements Scorer.
func (o *OpenAI) Score(ctx context.Context, lost, found model.Item) (float64, error) {
	text, err := o.complete(ctx, []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(scoreSystemPrompt),
		openai.UserMessage(ComparisonPrompt(lost, found)),
	})
	if err != nil {
		return 0, err
	}
	return ParseScore(text), nil
}
