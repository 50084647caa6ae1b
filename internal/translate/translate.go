package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/srt-tools/srtkit/pkg/srt"
)

// single cue text to translate, keyed by its position in the collection
type Item struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// translated cue text
type Result struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// interface for cue text translation; concurrency bounds the number of
// parallel API requests
type Translator interface {
	Translate(
		ctx context.Context,
		items []Item,
		concurrency int,
	) ([]Result, error)
}

// translation service provider
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

type Options struct {
	InputLanguage  string
	TargetLanguage string
	Model          string
	Prompt         string
	BatchSize      int // items per API request (default 50)
}

const DefaultBatchSize = 50

// creates a Translator based on provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Translator, error) {
	if opts.TargetLanguage == "" {
		return nil, fmt.Errorf("target language is required")
	}

	switch provider {
	case ProviderGemini:
		return NewGeminiTranslator(ctx, apiKey, opts)
	case ProviderOpenAI:
		return NewOpenAITranslator(ctx, apiKey, opts)
	case ProviderAnthropic:
		return NewAnthropicTranslator(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported translation provider: %s", provider)
	}
}

// Items converts a cue collection into translation work items, one per
// cue, keyed by collection position rather than by the cue ordinal
// (ordinals need not be unique).
func Items(subs srt.Subtitles) []Item {
	items := make([]Item, len(subs))
	for i, sub := range subs {
		items[i] = Item{Index: i, Text: sub.Text}
	}
	return items
}

// Apply writes translated text back into the collection. With overlay
// set, the original text is kept on the line below the translation.
// Results with an index outside the collection are skipped; Apply
// returns the number of cues updated.
func Apply(subs srt.Subtitles, results []Result, overlay bool) int {
	applied := 0
	for _, r := range results {
		if r.Index < 0 || r.Index >= len(subs) {
			continue
		}
		if overlay {
			subs[r.Index].Text = r.Text + "\n" + subs[r.Index].Text
		} else {
			subs[r.Index].Text = r.Text
		}
		applied++
	}
	return applied
}

// BuildPrompt creates the translation prompt for LLM providers
func BuildPrompt(opts Options, items []Item) string {
	var sb strings.Builder

	if opts.InputLanguage != "" {
		sb.WriteString(fmt.Sprintf(
			"Translate the following %s subtitle texts to %s.\n\n",
			opts.InputLanguage,
			opts.TargetLanguage,
		))
	} else {
		sb.WriteString(fmt.Sprintf(
			"Translate the following subtitle texts to %s.\n\n",
			opts.TargetLanguage,
		))
	}

	sb.WriteString("IMPORTANT INSTRUCTIONS:\n")
	sb.WriteString(
		"1. Translate ONLY the text content, preserving the meaning.\n",
	)
	sb.WriteString("2. Preserve line breaks in the same positions.\n")
	sb.WriteString("3. Return ONLY a JSON array with the same structure.\n")
	sb.WriteString("4. Each object must have 'index' and 'text' fields.\n")
	sb.WriteString(
		"5. The 'index' values must match the input indices exactly.\n",
	)
	sb.WriteString("6. Do not add any explanation or markdown formatting.\n\n")

	if opts.Prompt != "" {
		sb.WriteString(
			fmt.Sprintf("Additional instructions: %s\n\n", opts.Prompt),
		)
	}

	sb.WriteString("Input JSON:\n")

	inputJSON, _ := json.MarshalIndent(items, "", "  ")
	sb.Write(inputJSON)

	sb.WriteString("\n\nOutput the translated JSON array only:")

	return sb.String()
}

func batchSize(opts Options) int {
	if opts.BatchSize > 0 {
		return opts.BatchSize
	}
	return DefaultBatchSize
}

type batchFunc func(ctx context.Context, items []Item) ([]Result, error)

// runBatches splits items into batches of size and feeds them to run,
// with up to concurrency workers pulling batches from a shared queue.
// The first batch failure cancels the rest and is returned.
func runBatches(
	ctx context.Context,
	items []Item,
	size, concurrency int,
	run batchFunc,
) ([]Result, error) {
	if len(items) == 0 {
		return []Result{}, nil
	}
	if concurrency <= 0 {
		concurrency = 3
	}

	var batches [][]Item
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[i:end])
	}

	if len(batches) == 1 {
		return run(ctx, batches[0])
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type batchResult struct {
		Index   int
		Results []Result
		Error   error
	}

	workChan := make(chan int)
	resultChan := make(chan batchResult, len(batches))

	var wg sync.WaitGroup
	for i := 0; i < concurrency && i < len(batches); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case batchIdx, ok := <-workChan:
					if !ok {
						return
					}
					if ctx.Err() != nil {
						return
					}

					results, err := run(ctx, batches[batchIdx])
					if err != nil {
						cancel()
					}
					resultChan <- batchResult{
						Index:   batchIdx,
						Results: results,
						Error:   err,
					}
				}
			}
		}()
	}

	go func() {
		defer close(workChan)
		for i := range batches {
			select {
			case <-ctx.Done():
				return
			case workChan <- i:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	var firstErr error
	var allResults []Result
	for result := range resultChan {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf(
					"batch %d failed: %w",
					result.Index,
					result.Error,
				)
			}
			continue
		}
		allResults = append(allResults, result.Results...)
	}

	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(allResults, func(i, j int) bool {
		return allResults[i].Index < allResults[j].Index
	})

	return allResults, nil
}

func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)

	jsonBlockRegex := regexp.MustCompile("```(?:json)?\\s*")
	s = jsonBlockRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")

	return strings.TrimSpace(s)
}

// fixes invalid JSON escape sequences the model may echo back from cue
// text, escaping the backslash so the literal sequence survives decoding
func fixInvalidEscapes(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	i := 0
	for i < len(s) {
		if i < len(s)-1 && s[i] == '\\' {
			next := s[i+1]
			switch next {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
				result.WriteByte(s[i])
				result.WriteByte(s[i+1])
				i += 2
			default:
				result.WriteString("\\\\")
				result.WriteByte(next)
				i += 2
			}
		} else {
			result.WriteByte(s[i])
			i++
		}
	}

	return result.String()
}

// extractResults digs a result array out of whatever JSON the model
// produced: a bare array, or an object wrapping the array under a
// well-known (or any) key.
func extractResults(text string) ([]Result, error) {
	text = fixInvalidEscapes(text)

	for i := 0; i < len(text); i++ {
		if text[i] != '[' && text[i] != '{' {
			continue
		}
		decoder := json.NewDecoder(strings.NewReader(text[i:]))
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			continue
		}
		if results, ok := tryExtractResults(raw); ok && len(results) > 0 {
			return results, nil
		}
	}
	return nil, fmt.Errorf("no valid translation JSON found in response")
}

func tryExtractResults(raw json.RawMessage) ([]Result, bool) {
	var results []Result
	if err := json.Unmarshal(raw, &results); err == nil &&
		validateResults(results) {
		return results, true
	}

	wrapperKeys := []string{"results", "translations", "data", "items"}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, false
	}

	for _, key := range wrapperKeys {
		if fieldRaw, exists := wrapper[key]; exists {
			var fieldResults []Result
			if err := json.Unmarshal(
				fieldRaw,
				&fieldResults,
			); err == nil && validateResults(fieldResults) {
				return fieldResults, true
			}
		}
	}

	for _, fieldRaw := range wrapper {
		var fieldResults []Result
		if err := json.Unmarshal(
			fieldRaw,
			&fieldResults,
		); err == nil && validateResults(fieldResults) {
			return fieldResults, true
		}
	}

	return nil, false
}

func validateResults(results []Result) bool {
	for _, r := range results {
		if r.Text != "" {
			return true
		}
	}
	return false
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
