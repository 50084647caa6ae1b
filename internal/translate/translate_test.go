package translate

import (
	"context"
	"os"
	"testing"

	"github.com/srt-tools/srtkit/pkg/srt"
)

func TestFactoryReturnsGeminiTranslator(t *testing.T) {
	ctx := context.Background()
	opts := Options{TargetLanguage: "Japanese"}
	translator, err := Factory(ctx, ProviderGemini, "fake-key", opts)
	if err != nil {
		t.Fatalf("Factory(ProviderGemini) returned error: %v", err)
	}
	if _, ok := translator.(*GeminiTranslator); !ok {
		t.Errorf("expected *GeminiTranslator, got %T", translator)
	}
}

func TestFactoryReturnsOpenAITranslator(t *testing.T) {
	ctx := context.Background()
	opts := Options{TargetLanguage: "Spanish"}
	translator, err := Factory(ctx, ProviderOpenAI, "fake-key", opts)
	if err != nil {
		t.Fatalf("Factory(ProviderOpenAI) returned error: %v", err)
	}
	if _, ok := translator.(*OpenAITranslator); !ok {
		t.Errorf("expected *OpenAITranslator, got %T", translator)
	}
}

func TestFactoryReturnsAnthropicTranslator(t *testing.T) {
	ctx := context.Background()
	opts := Options{TargetLanguage: "French"}
	translator, err := Factory(ctx, ProviderAnthropic, "fake-key", opts)
	if err != nil {
		t.Fatalf("Factory(ProviderAnthropic) returned error: %v", err)
	}
	if _, ok := translator.(*AnthropicTranslator); !ok {
		t.Errorf("expected *AnthropicTranslator, got %T", translator)
	}
}

func TestFactoryRequiresTargetLanguage(t *testing.T) {
	ctx := context.Background()
	opts := Options{} // no TargetLanguage
	_, err := Factory(ctx, ProviderGemini, "fake-key", opts)
	if err == nil {
		t.Error("expected error for missing target language")
	}
}

func TestFactoryRejectsUnknownProvider(t *testing.T) {
	ctx := context.Background()
	opts := Options{TargetLanguage: "French"}
	_, err := Factory(ctx, Provider("unknown"), "fake-key", opts)
	if err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestItemsKeyedByPosition(t *testing.T) {
	subs := srt.From([]srt.Subtitle{
		srt.NewSubtitle(7, srt.NewTimestamp(0, 0, 0, 0), srt.NewTimestamp(0, 0, 1, 0), "one"),
		srt.NewSubtitle(7, srt.NewTimestamp(0, 0, 2, 0), srt.NewTimestamp(0, 0, 3, 0), "two"),
	})

	items := Items(subs)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Index != 0 || items[1].Index != 1 {
		t.Errorf("items keyed by ordinal instead of position: %+v", items)
	}
	if items[1].Text != "two" {
		t.Errorf("items[1].Text = %q", items[1].Text)
	}
}

func TestApply(t *testing.T) {
	subs := srt.From([]srt.Subtitle{
		srt.NewSubtitle(1, srt.NewTimestamp(0, 0, 0, 0), srt.NewTimestamp(0, 0, 1, 0), "Hello"),
		srt.NewSubtitle(2, srt.NewTimestamp(0, 0, 2, 0), srt.NewTimestamp(0, 0, 3, 0), "World"),
	})

	applied := Apply(subs, []Result{
		{Index: 0, Text: "Hola"},
		{Index: 5, Text: "out of range"},
	}, false)

	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}
	if subs[0].Text != "Hola" {
		t.Errorf("subs[0].Text = %q", subs[0].Text)
	}
	if subs[1].Text != "World" {
		t.Errorf("subs[1].Text changed: %q", subs[1].Text)
	}
}

func TestApplyOverlay(t *testing.T) {
	subs := srt.From([]srt.Subtitle{
		srt.NewSubtitle(1, srt.NewTimestamp(0, 0, 0, 0), srt.NewTimestamp(0, 0, 1, 0), "Hello"),
	})

	Apply(subs, []Result{{Index: 0, Text: "Hola"}}, true)
	if subs[0].Text != "Hola\nHello" {
		t.Errorf("overlay text = %q, want translation above original", subs[0].Text)
	}
}

func TestRunBatchesSplitsAndMerges(t *testing.T) {
	items := make([]Item, 10)
	for i := range items {
		items[i] = Item{Index: i, Text: "x"}
	}

	run := func(ctx context.Context, batch []Item) ([]Result, error) {
		results := make([]Result, len(batch))
		for i, item := range batch {
			results[i] = Result{Index: item.Index, Text: "y"}
		}
		return results, nil
	}

	results, err := runBatches(context.Background(), items, 3, 2, run)
	if err != nil {
		t.Fatalf("runBatches error: %v", err)
	}
	if len(results) != 10 {
		t.Fatalf("expected 10 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("results out of order at %d: %+v", i, r)
		}
	}
}

func TestRunBatchesPropagatesFailure(t *testing.T) {
	items := make([]Item, 10)
	for i := range items {
		items[i] = Item{Index: i, Text: "x"}
	}

	run := func(ctx context.Context, batch []Item) ([]Result, error) {
		if batch[0].Index >= 5 {
			return nil, context.Canceled
		}
		results := make([]Result, len(batch))
		for i, item := range batch {
			results[i] = Result{Index: item.Index, Text: "y"}
		}
		return results, nil
	}

	_, err := runBatches(context.Background(), items, 5, 2, run)
	if err == nil {
		t.Error("expected a batch failure to propagate")
	}
}

func TestExtractResultsBareArray(t *testing.T) {
	results, err := extractResults(`[{"index":0,"text":"hola"}]`)
	if err != nil {
		t.Fatalf("extractResults error: %v", err)
	}
	if len(results) != 1 || results[0].Text != "hola" {
		t.Errorf("got %+v", results)
	}
}

func TestExtractResultsWrappedObject(t *testing.T) {
	results, err := extractResults(`{"translations":[{"index":0,"text":"hola"}]}`)
	if err != nil {
		t.Fatalf("extractResults error: %v", err)
	}
	if len(results) != 1 || results[0].Text != "hola" {
		t.Errorf("got %+v", results)
	}
}

func TestExtractResultsInvalidEscapes(t *testing.T) {
	// models sometimes echo ASS-style \N sequences, which are not valid
	// JSON escapes
	results, err := extractResults(`[{"index":0,"text":"line\None"}]`)
	if err != nil {
		t.Fatalf("extractResults error: %v", err)
	}
	if results[0].Text != `line\None` {
		t.Errorf("got %q, want the literal backslash-N preserved", results[0].Text)
	}
}

func TestCleanJSONResponseStripsFences(t *testing.T) {
	input := "```json\n[{\"index\":0,\"text\":\"hola\"}]\n```"
	got := cleanJSONResponse(input)
	if got != `[{"index":0,"text":"hola"}]` {
		t.Errorf("got %q", got)
	}
}

// Integration test: only runs if OPENAI_API_KEY is set
func TestOpenAITranslatorIntegration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("OPENAI_API_KEY not set; skipping integration test")
	}

	ctx := context.Background()
	opts := Options{TargetLanguage: "Spanish"}
	translator, err := NewOpenAITranslator(ctx, apiKey, opts)
	if err != nil {
		t.Fatalf("NewOpenAITranslator error: %v", err)
	}

	items := []Item{
		{Index: 0, Text: "Hello"},
		{Index: 1, Text: "Goodbye"},
	}

	results, err := translator.Translate(ctx, items, 1)
	if err != nil {
		t.Fatalf("Translate error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Text == "" {
			t.Errorf("result index %d has empty text", r.Index)
		}
	}
}
