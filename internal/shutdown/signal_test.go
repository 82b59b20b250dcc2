package shutdown

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSignals_NotCancelledInitially(t *testing.T) {
	ctx, stop := WithSignals(context.Background(), nil)
	defer stop()

	select {
	case <-ctx.Done():
		t.Fatal("context should not be cancelled immediately")
	default:
	}
}

func TestWithSignals_StopCancels(t *testing.T) {
	ctx, stop := WithSignals(context.Background(), nil)
	stop()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("stop did not cancel the context")
	}
}

func TestWithSignals_ParentCancelPropagates(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := WithSignals(parent, nil)
	defer stop()

	cancel()

	select {
	case <-ctx.Done():
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("parent cancellation did not propagate")
	}
}

func TestWithSignals_SignalRunsCallback(t *testing.T) {
	if os.Getenv("CI") == "true" {
		t.Skip("Skipping signal test in CI environment")
	}

	received := make(chan os.Signal, 1)
	ctx, stop := WithSignals(context.Background(), func(sig os.Signal) {
		received <- sig
	})
	defer stop()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not cancelled after SIGTERM")
	}

	select {
	case sig := <-received:
		assert.Equal(t, syscall.SIGTERM, sig)
	case <-time.After(time.Second):
		t.Fatal("callback was not called")
	}
}
