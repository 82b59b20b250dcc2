package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/gosynth/internal/dataio"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <path>",
	Short: "Report line and character counts for a text file",
	Long: `Inspect reads a text file line by line and reports how many lines and
characters it contains.

Example:
  gosynth inspect data.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	lines, err := dataio.ReadLines(args[0])
	if err != nil {
		return fmt.Errorf("failed to inspect file: %w", err)
	}

	stats := dataio.Stats(lines)
	cmd.Printf("File: %s\n", args[0])
	cmd.Printf("  Lines:        %s\n", humanize.Comma(int64(stats.Lines)))
	cmd.Printf("  Empty lines:  %s\n", humanize.Comma(int64(stats.EmptyLines)))
	cmd.Printf("  Characters:   %s\n", humanize.Comma(int64(stats.Chars)))
	cmd.Printf("  Longest line: %s\n", humanize.Comma(int64(stats.Longest)))
	return nil
}
