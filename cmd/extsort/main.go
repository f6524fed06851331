package main

import (
	"errors"
	"fmt"
	"os"
)

// errPartialFailure marks a run that finished and printed its summary but
// recorded at least one per-entry error. Everything else that escapes the
// command tree is a fatal precondition.
var errPartialFailure = errors.New("completed with errors")

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errPartialFailure) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(2)
	}
}
