// Package main provides the entry point for the stepwise CLI.
package main

import (
	"os"

	"github.com/katalvlaran/stepwise/cmd/stepwise/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
