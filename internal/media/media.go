package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// defines interface for pulling subtitle streams out of media containers
type Extractor interface {
	// extracts one embedded subtitle stream into an .srt file
	ExtractSubtitle(
		ctx context.Context,
		mediaPath, outputPath string,
		opts ExtractOptions,
	) error
}

// holds options for subtitle extraction
type ExtractOptions struct {
	Track int // subtitle stream index within the container (0 = first)
}

// returns sensible defaults for subtitle extraction
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{Track: 0}
}

// default implementation using ffmpeg
type FFmpegExtractor struct{}

func NewExtractor() *FFmpegExtractor {
	return &FFmpegExtractor{}
}

// extracts the chosen subtitle stream and converts it to SubRip
func (e *FFmpegExtractor) ExtractSubtitle(
	ctx context.Context,
	mediaPath, outputPath string,
	opts ExtractOptions,
) error {
	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("media file not found: %s", mediaPath)
	}
	if opts.Track < 0 {
		return fmt.Errorf("invalid subtitle track %d", opts.Track)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := extractStream(mediaPath, outputPath, opts).Run(); err != nil {
		return fmt.Errorf("ffmpeg extraction failed: %w", err)
	}

	return nil
}

func extractStream(
	mediaPath, outputPath string,
	opts ExtractOptions,
) *ffmpeg.Stream {
	kwargs := ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:s:%d", opts.Track),
		"c:s": "srt",
	}

	return ffmpeg.Input(mediaPath).
		Output(outputPath, kwargs).
		OverWriteOutput()
}
