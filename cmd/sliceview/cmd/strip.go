package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/sliceview/text"
)

var stripSuffix bool

var stripCmd = &cobra.Command{
	Use:   "strip <affix> <input>",
	Short: "Remove a prefix (or, with --suffix, a suffix) from the input",
	Example: `  sliceview strip abc abcde
  sliceview strip --suffix de abcde`,
	Args: cobra.ExactArgs(2),
	RunE: runStrip,
}

func init() {
	stripCmd.Flags().BoolVar(&stripSuffix, "suffix", false,
		"strip from the end instead of the start")
	rootCmd.AddCommand(stripCmd)
}

func runStrip(cmd *cobra.Command, args []string) error {
	affix, input := args[0], args[1]

	if stripSuffix {
		rest, ok := text.StripSuffix(input, affix)
		if !ok {
			return fmt.Errorf("%q does not end with %q", input, affix)
		}
		fmt.Println(rest)
		return nil
	}

	rest, ok := text.StripPrefix(input, affix)
	if !ok {
		return fmt.Errorf("%q does not start with %q", input, affix)
	}
	fmt.Println(rest)
	return nil
}
