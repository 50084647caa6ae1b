package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/srt-tools/srtkit/internal/media"
)

var extractCmd = &cobra.Command{
	Use:   "extract [media_file]",
	Short: "Extract an embedded subtitle track from a media file",
	Long: `Extract a subtitle stream from a video container and save it as a
.srt file. Requires ffmpeg on the PATH.

Examples:
  srtkit extract movie.mkv
  srtkit extract movie.mkv --track 1 -o german.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		IntP("track", "t", 0, "Subtitle track index within the container (0 = first)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]

	track, _ := cmd.Flags().GetInt("track")
	outputPath, _ := cmd.Flags().GetString("output")

	if track < 0 {
		return fmt.Errorf("track must be non-negative, got %d", track)
	}

	if outputPath == "" {
		ext := filepath.Ext(mediaPath)
		outputPath = strings.TrimSuffix(mediaPath, ext) + ".srt"
	}

	logger.Infow("Extracting subtitle track",
		"media", mediaPath,
		"output", outputPath,
		"track", track,
	)

	extractor := media.NewExtractor()

	opts := media.ExtractOptions{Track: track}

	ctx := context.Background()
	if err := extractor.ExtractSubtitle(
		ctx,
		mediaPath,
		outputPath,
		opts,
	); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitle track extracted successfully: %s\n", absOutput)

	return nil
}
