package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags shared by every subcommand.
var (
	maxSegmentCount int
	gapRate         float64
	tailRate        float64
	borderIncision  string
	encodingName    string
	tokenize        bool
)

var rootCmd = &cobra.Command{
	Use:   "ressplit",
	Short: "Split a stream of text resources into overlap-windowed groups",
	Long: `ressplit packs a JSON array of text resources into segments along
their strongest incision boundaries, then slides a bounded window over the
result so neighboring groups share head/tail overlap.

Input is a JSON array of {"text": "...", "start_incision": "...",
"end_incision": "..."} objects read from stdin; output is a JSON array of
groups written to stdout.`,
	Example: `  # Pack chat history into context-window-sized groups
  cat history.json | ressplit split --max-segment-count 3000 --tokenize

  # Render each group as an OpenAI chat completion message list
  cat history.json | ressplit split --tokenize --chat`,
}

// Execute runs the root command, exiting the process with a non-zero
// status on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&maxSegmentCount, "max-segment-count", 2000, "maximum weight of a segment or group window")
	rootCmd.PersistentFlags().Float64Var(&gapRate, "gap-rate", 0.25, "fraction of max-segment-count reserved for head/tail overlap on each side")
	rootCmd.PersistentFlags().Float64Var(&tailRate, "tail-rate", 0.5, "bias of overlap toward the tail versus the head, in [0,1]")
	rootCmd.PersistentFlags().StringVar(&borderIncision, "border-incision", "impossible", "recursion floor: impossible, uncertain, most_likely, or must_be")
	rootCmd.PersistentFlags().StringVar(&encodingName, "encoding", "cl100k_base", "tiktoken encoding used when --tokenize is set")
	rootCmd.PersistentFlags().BoolVar(&tokenize, "tokenize", false, "weigh resources by token count instead of rune count")
}
