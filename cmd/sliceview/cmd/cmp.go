package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/sliceview/text"
)

var cmpCmd = &cobra.Command{
	Use:     "cmp <a> <b>",
	Short:   "Compare two inputs lexicographically by raw bytes",
	Example: `  sliceview cmp hi ho`,
	Args:    cobra.ExactArgs(2),
	RunE:    runCmp,
}

func init() {
	rootCmd.AddCommand(cmpCmd)
}

func runCmp(cmd *cobra.Command, args []string) error {
	switch text.Compare(args[0], args[1]) {
	case -1:
		fmt.Println("less")
	case 1:
		fmt.Println("greater")
	default:
		fmt.Println("equal")
	}
	return nil
}
