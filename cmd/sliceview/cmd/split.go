package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/sliceview/rangeexpr"
	"github.com/dshills/sliceview/seq"
	"github.com/dshills/sliceview/text"
)

var splitAsBytes bool

var splitCmd = &cobra.Command{
	Use:     "split <index> <input>",
	Short:   "Split the input in two at a byte offset",
	Example: `  sliceview split 3 abcde`,
	Args:    cobra.ExactArgs(2),
	RunE:    runSplit,
}

func init() {
	splitCmd.Flags().BoolVar(&splitAsBytes, "bytes", false,
		"treat the input as raw bytes and print both halves as byte lists")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	i, err := rangeexpr.ParseIndex(args[0])
	if err != nil {
		return err
	}

	if splitAsBytes {
		left, right, err := seq.SplitAt([]byte(args[1]), i)
		if err != nil {
			return err
		}
		fmt.Println(left)
		fmt.Println(right)
		return nil
	}

	left, right, err := text.SplitAt(args[1], i)
	if err != nil {
		return err
	}
	fmt.Println(left)
	fmt.Println(right)
	return nil
}
