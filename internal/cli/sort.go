package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/srt-tools/srtkit/pkg/srt"
)

var sortCmd = &cobra.Command{
	Use:   "sort [subtitle_file]",
	Short: "Sort subtitles by number and time",
	Long: `Sort the subtitles in a .srt file by their numeric counter, breaking
ties by start and then end time.

With --renumber, the sorted subtitles are renumbered sequentially, which
repairs files with duplicate or out-of-order counters.

Examples:
  srtkit sort movie.srt
  srtkit sort movie.srt --renumber
  srtkit sort movie.srt --renumber --start-at 0 -o clean.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runSort,
}

func init() {
	rootCmd.AddCommand(sortCmd)

	sortCmd.Flags().Bool("renumber", false, "Renumber subtitles sequentially after sorting")
	sortCmd.Flags().Int("start-at", 1, "First number to use with --renumber")
}

func runSort(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	renumber, _ := cmd.Flags().GetBool("renumber")
	startAt, _ := cmd.Flags().GetInt("start-at")
	encoding, _ := cmd.Flags().GetString("encoding")
	outputPath, _ := cmd.Flags().GetString("output")

	if renumber && startAt < 0 {
		return fmt.Errorf("start-at must be non-negative, got %d", startAt)
	}

	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", subtitlePath)
	}

	if outputPath == "" {
		outputPath = subtitlePath
	}

	logger.Infow("Sorting subtitles",
		"input", subtitlePath,
		"output", outputPath,
		"renumber", renumber,
	)

	subs, err := srt.ParseFile(subtitlePath, encoding)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	subs.Sort()

	if renumber {
		for i := range subs {
			subs[i].Num = startAt + i
		}
	}

	if err := subs.WriteFile(outputPath, encoding); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles sorted successfully: %s\n", absOutput)
	fmt.Printf("  Entries: %d\n", subs.Len())

	return nil
}
