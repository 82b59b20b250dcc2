// Package shutdown ties command lifetimes to process signals.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Signals are the signals that cancel a run.
var Signals = []os.Signal{syscall.SIGTERM, syscall.SIGINT}

// WithSignals returns a child of parent that is cancelled on SIGTERM or
// SIGINT. onSignal, if not nil, runs before cancellation so the caller can
// log which signal arrived. The returned stop function releases the signal
// subscription and must be called once the run ends.
func WithSignals(parent context.Context, onSignal func(os.Signal)) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, Signals...)

	go func() {
		select {
		case sig := <-sigChan:
			if onSignal != nil {
				onSignal(sig)
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	stop := func() {
		signal.Stop(sigChan)
		cancel()
	}
	return ctx, stop
}
