// Command patterns runs the design-pattern demo scenarios.
//
//	patterns list
//	patterns run observer strategy --seed 7
//	patterns run --all --config patterns.yaml --debug
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
