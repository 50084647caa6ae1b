package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/srt-tools/srtkit/pkg/srt"
)

var shiftCmd = &cobra.Command{
	Use:   "shift [subtitle_file]",
	Short: "Move every subtitle forward or backward in time",
	Long: `Shift all subtitles in a .srt file by a fixed amount of time.

The shift is the sum of the --hours, --minutes, --seconds and
--milliseconds flags; negative values move subtitles backward. A shift
that would push any subtitle past 255 hours or below zero aborts without
writing the output file.

Examples:
  srtkit shift movie.srt --seconds 10
  srtkit shift movie.srt --seconds -3 --milliseconds -250
  srtkit shift movie.srt -e iso-8859-7 --minutes 1 -o fixed.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().Int("hours", 0, "Hours to shift by (may be negative)")
	shiftCmd.Flags().Int("minutes", 0, "Minutes to shift by (may be negative)")
	shiftCmd.Flags().Int("seconds", 0, "Seconds to shift by (may be negative)")
	shiftCmd.Flags().Int("milliseconds", 0, "Milliseconds to shift by (may be negative)")
}

func runShift(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]

	hours, _ := cmd.Flags().GetInt("hours")
	minutes, _ := cmd.Flags().GetInt("minutes")
	seconds, _ := cmd.Flags().GetInt("seconds")
	milliseconds, _ := cmd.Flags().GetInt("milliseconds")
	encoding, _ := cmd.Flags().GetString("encoding")
	outputPath, _ := cmd.Flags().GetString("output")

	if hours == 0 && minutes == 0 && seconds == 0 && milliseconds == 0 {
		return fmt.Errorf("nothing to do: all shift amounts are zero")
	}

	if _, err := os.Stat(subtitlePath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", subtitlePath)
	}

	if outputPath == "" {
		outputPath = subtitlePath
	}

	logger.Infow("Shifting subtitles",
		"input", subtitlePath,
		"output", outputPath,
		"hours", hours,
		"minutes", minutes,
		"seconds", seconds,
		"milliseconds", milliseconds,
	)

	subs, err := srt.ParseFile(subtitlePath, encoding)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	for i := range subs {
		if err := shiftSubtitle(&subs[i], hours, minutes, seconds, milliseconds); err != nil {
			if errors.Is(err, srt.ErrTimestampRange) {
				return fmt.Errorf(
					"subtitle %d cannot be shifted that far: %w",
					subs[i].Num,
					err,
				)
			}
			return err
		}
	}

	if err := subs.WriteFile(outputPath, encoding); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles shifted successfully: %s\n", absOutput)
	fmt.Printf("  Entries: %d\n", subs.Len())

	return nil
}

func shiftSubtitle(sub *srt.Subtitle, hours, minutes, seconds, milliseconds int) error {
	if hours != 0 {
		if err := sub.AddHours(hours); err != nil {
			return err
		}
	}
	if minutes != 0 {
		if err := sub.AddMinutes(minutes); err != nil {
			return err
		}
	}
	if seconds != 0 {
		if err := sub.AddSeconds(seconds); err != nil {
			return err
		}
	}
	if milliseconds != 0 {
		if err := sub.AddMilliseconds(milliseconds); err != nil {
			return err
		}
	}
	return nil
}
