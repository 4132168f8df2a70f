// Command engine-cli queries a remote workflow engine from the terminal.
//
// Usage:
//
//	engine-cli definitions --name-like 'Invoice%' --latest
//	engine-cli tasks --assignee demo
//	engine-cli incidents --process-instance PID
//	engine-cli instances count --key invoice
//	engine-cli stats --output yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
