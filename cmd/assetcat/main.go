// Command assetcat loads files through an assetcache Manager and prints what
// each argument resolved to. Repeated paths are loaded once.
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
		fmt.Fprintf(os.Stderr, "assetcat: %v\n", err)
		stop()
		os.Exit(1)
	}
}
