package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/srt-tools/srtkit/internal/translate"
	"github.com/srt-tools/srtkit/pkg/srt"
)

var translateCmd = &cobra.Command{
	Use:   "translate [subtitle_file]",
	Short: "Translate subtitles to another language using AI",
	Long: `Translate a .srt file to another language using an AI provider.

The --overlay flag creates bilingual subtitles with the translated text
first, followed by the original text on the next line.

Examples:
  srtkit translate movie.srt --target-language japanese
  srtkit translate movie.srt --target-language ja --overlay
  srtkit translate movie.srt -l english --target-language spanish -o translated.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().
		StringP("target-language", "t", "", "Target language for translation (required)")
	translateCmd.Flags().
		StringP("language", "l", "", "Language of the input subtitles")
	translateCmd.Flags().
		Bool("overlay", false, "Overlay translated text with original (bilingual subtitles)")
	translateCmd.Flags().
		StringP("api-key", "k", "", "API key (or set GEMINI_API_KEY/OPENAI_API_KEY/ANTHROPIC_API_KEY env var)")
	translateCmd.Flags().
		String("model", "", "Model to use for translation (provider-specific, uses sensible defaults)")
	translateCmd.Flags().
		String("provider", "gemini", "Translation provider (gemini, openai, anthropic)")
	translateCmd.Flags().
		Int("concurrency", 3, "Number of parallel translation workers")
	translateCmd.Flags().
		Int("batch-size", 50, "Number of subtitle entries per API request")

	_ = translateCmd.MarkFlagRequired("target-language")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	ctx := context.Background()

	targetLang, _ := cmd.Flags().GetString("target-language")
	inputLang, _ := cmd.Flags().GetString("language")
	overlay, _ := cmd.Flags().GetBool("overlay")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	providerStr, _ := cmd.Flags().GetString("provider")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	encoding, _ := cmd.Flags().GetString("encoding")
	outputPath, _ := cmd.Flags().GetString("output")

	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", subtitlePath)
	}

	if targetLang == "" {
		return fmt.Errorf("target language is required")
	}

	if inputLang != "" &&
		strings.EqualFold(
			strings.TrimSpace(inputLang),
			strings.TrimSpace(targetLang),
		) {
		return fmt.Errorf(
			"input language %q and target language %q cannot be the same",
			inputLang,
			targetLang,
		)
	}

	provider := translate.Provider(providerStr)

	if apiKey == "" {
		apiKey = apiKeyFromEnv(provider)
	}
	if apiKey == "" {
		return fmt.Errorf(
			"API key is required: use --api-key flag or set %s environment variable",
			apiKeyEnvVar(provider),
		)
	}

	if concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}
	if batchSize <= 0 {
		return fmt.Errorf("batch-size must be positive, got %d", batchSize)
	}

	if outputPath == "" {
		outputPath = defaultTranslateOutput(subtitlePath, targetLang, overlay)
	}

	logger.Infow("Starting subtitle translation",
		"input", subtitlePath,
		"output", outputPath,
		"target_language", targetLang,
		"input_language", inputLang,
		"overlay", overlay,
		"model", model,
	)

	subs, err := srt.ParseFile(subtitlePath, encoding)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}
	if subs.IsEmpty() {
		return fmt.Errorf("subtitle file contains no entries")
	}

	logger.Infow("Parsed subtitle file", "entries", subs.Len())

	opts := translate.Options{
		InputLanguage:  inputLang,
		TargetLanguage: targetLang,
		Model:          model,
		BatchSize:      batchSize,
	}

	translator, err := translate.Factory(ctx, provider, apiKey, opts)
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}

	items := translate.Items(subs)

	logger.Infow("Translating subtitles",
		"items", len(items),
		"concurrency", concurrency,
	)

	results, err := translator.Translate(ctx, items, concurrency)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	applied := translate.Apply(subs, results, overlay)
	if applied < len(results) {
		logger.Warnw("Some results had invalid indices",
			"applied", applied,
			"results", len(results),
		)
	}

	logger.Infow("Writing output file")
	if err := subs.WriteFile(outputPath, encoding); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles translated successfully: %s\n", absOutput)
	fmt.Printf("  Entries: %d\n", subs.Len())
	fmt.Printf("  Target language: %s\n", targetLang)
	if overlay {
		fmt.Printf("  Mode: bilingual overlay\n")
	}

	return nil
}

func apiKeyFromEnv(provider translate.Provider) string {
	return os.Getenv(apiKeyEnvVar(provider))
}

func apiKeyEnvVar(provider translate.Provider) string {
	switch provider {
	case translate.ProviderGemini:
		return "GEMINI_API_KEY"
	case translate.ProviderOpenAI:
		return "OPENAI_API_KEY"
	case translate.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return "API_KEY"
	}
}

func defaultTranslateOutput(subtitlePath, targetLang string, overlay bool) string {
	ext := filepath.Ext(subtitlePath)
	baseName := strings.TrimSuffix(subtitlePath, ext)
	if overlay {
		return fmt.Sprintf("%s.%s.overlay%s", baseName, targetLang, ext)
	}
	return fmt.Sprintf("%s.%s%s", baseName, targetLang, ext)
}
