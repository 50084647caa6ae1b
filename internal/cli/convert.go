package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/srt-tools/srtkit/pkg/srt"
)

var convertCmd = &cobra.Command{
	Use:   "convert [subtitle_file]",
	Short: "Convert a subtitle file between character encodings",
	Long: `Re-encode a .srt file from one character encoding to another.

Encodings are WHATWG labels (see
https://encoding.spec.whatwg.org/#names-and-labels); an empty label means
UTF-8. The file is parsed and re-rendered on the way through, so Windows
line endings and a leading byte-order mark are normalized away as well.

Examples:
  srtkit convert greek.srt --from iso-8859-7
  srtkit convert movie.srt --from shift_jis --to utf-8 -o movie.utf8.srt
  srtkit convert movie.srt --to windows-1252`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().String("from", "", "Encoding of the input file (default UTF-8)")
	convertCmd.Flags().String("to", "", "Encoding of the output file (default UTF-8)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	fromEncoding, _ := cmd.Flags().GetString("from")
	toEncoding, _ := cmd.Flags().GetString("to")
	outputPath, _ := cmd.Flags().GetString("output")

	if fromEncoding == "" && toEncoding == "" {
		return fmt.Errorf("nothing to do: specify --from and/or --to")
	}

	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", subtitlePath)
	}

	if outputPath == "" {
		outputPath = subtitlePath
	}

	logger.Infow("Converting subtitle encoding",
		"input", subtitlePath,
		"output", outputPath,
		"from", fromEncoding,
		"to", toEncoding,
	)

	subs, err := srt.ParseFile(subtitlePath, fromEncoding)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	if err := subs.WriteFile(outputPath, toEncoding); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles converted successfully: %s\n", absOutput)
	fmt.Printf("  Entries: %d\n", subs.Len())

	return nil
}
