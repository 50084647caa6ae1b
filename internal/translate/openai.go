package translate

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// implements Translator using OpenAI Chat Completions
type OpenAITranslator struct {
	client  openai.Client
	model   string
	options Options
}

func NewOpenAITranslator(
	ctx context.Context,
	apiKey string,
	opts Options,
) (*OpenAITranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	model := opts.Model
	if model == "" {
		model = "gpt-5-mini"
	}

	return &OpenAITranslator{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

func (t *OpenAITranslator) Translate(
	ctx context.Context,
	items []Item,
	concurrency int,
) ([]Result, error) {
	return runBatches(ctx, items, batchSize(t.options), concurrency, t.translateBatch)
}

func (t *OpenAITranslator) translateBatch(
	ctx context.Context,
	items []Item,
) ([]Result, error) {
	prompt := BuildPrompt(t.options, items)

	completion, err := t.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			},
			Model: t.model,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}

	return t.parseResponse(completion, len(items))
}

func (t *OpenAITranslator) parseResponse(
	completion *openai.ChatCompletion,
	expectedCount int,
) ([]Result, error) {
	if completion == nil || len(completion.Choices) == 0 {
		return nil, fmt.Errorf("empty response from OpenAI")
	}

	responseText := completion.Choices[0].Message.Content

	if responseText == "" {
		return nil, fmt.Errorf("no text in OpenAI response")
	}

	responseText = cleanJSONResponse(responseText)

	results, err := extractResults(responseText)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to parse JSON response: %w (response: %s)",
			err,
			truncateString(responseText, 200),
		)
	}

	if len(results) != expectedCount {
		return nil, fmt.Errorf(
			"expected %d results, got %d",
			expectedCount,
			len(results),
		)
	}

	return results, nil
}
