package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "sliceview",
	Short: "Slice, split, compare and strip text or byte sequences",
	Long: `sliceview applies the sliceview library operations to command-line input.

Ranges use the expression notation "a..b" (half-open), "a..=b" (inclusive),
"a..", "..b", "..=b" and "..". Offsets are byte offsets; operations on text
refuse to split a multi-byte UTF-8 codepoint.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
