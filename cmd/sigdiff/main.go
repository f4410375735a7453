// Command sigdiff compares the signature listings of a reference and a
// target implementation of the same API and reports, function by function
// and argument by argument, where their types differ.
//
// Usage:
//
//	sigdiff muon.txt meson.txt > status.html
//	sigdiff --format text --details muon.txt meson.txt
//	sigdiff -i muon.txt meson.txt
//	sigdiff --watch -o status.html muon.txt meson.txt
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
