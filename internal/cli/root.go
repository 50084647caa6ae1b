package cli

import (
	"github.com/spf13/cobra"
	"github.com/srt-tools/srtkit/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srtkit",
	Short: "Toolkit for editing SubRip subtitle files",
	Long: `Srtkit is a CLI tool for working with .srt subtitle files.

It can shift subtitles in time, sort and renumber them, convert between
character encodings, extract embedded subtitle tracks from media files
and translate subtitles with AI.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringP("encoding", "e", "", "Character encoding of the input file (WHATWG label, default UTF-8)")
}
