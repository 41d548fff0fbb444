package main

import (
	"errors"
	"fmt"
	"os"

	"cratepub/internal/publisher"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps workflow failures to their taxonomy codes; anything else is 1.
func exitCode(err error) int {
	var perr *publisher.Error
	if errors.As(err, &perr) {
		return perr.Kind.ExitCode()
	}
	return 1
}
