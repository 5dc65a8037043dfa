package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/sliceview/rangeexpr"
	"github.com/dshills/sliceview/seq"
	"github.com/dshills/sliceview/text"
)

var sliceAsBytes bool

var sliceCmd = &cobra.Command{
	Use:   "slice <range> <input>",
	Short: "Print the part of the input covered by a range expression",
	Example: `  sliceview slice ..5 "const slice"
  sliceview slice 1..=3 01234
  sliceview slice --bytes 1..4 abcde`,
	Args: cobra.ExactArgs(2),
	RunE: runSlice,
}

func init() {
	sliceCmd.Flags().BoolVar(&sliceAsBytes, "bytes", false,
		"treat the input as raw bytes and print the result as a byte list")
	rootCmd.AddCommand(sliceCmd)
}

func runSlice(cmd *cobra.Command, args []string) error {
	r, err := rangeexpr.Parse(args[0])
	if err != nil {
		return err
	}

	if sliceAsBytes {
		part, err := seq.Slice([]byte(args[1]), r)
		if err != nil {
			return err
		}
		fmt.Println(part)
		return nil
	}

	part, err := text.Slice(args[1], r)
	if err != nil {
		return err
	}
	fmt.Println(part)
	return nil
}
