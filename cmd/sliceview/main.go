package main

import (
	"os"

	"github.com/dshills/sliceview/cmd/sliceview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
