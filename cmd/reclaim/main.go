package main

import (
	"errors"
	"fmt"
	"os"

	"reclaim/internal/cli"
	"reclaim/internal/exitcodes"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrConfig) {
			os.Exit(exitcodes.InvalidConfig)
		}
		os.Exit(exitcodes.RuntimeError)
	}
	os.Exit(exitcodes.Success)
}
