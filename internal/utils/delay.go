// Package utils provides general-purpose helpers used across the client:
// simulated latency, id generation and a replaceable clock.
package utils

import (
	"context"
	"time"
)

// Delayer models an asynchronous round trip that completes after some time.
// Production code uses a timer; tests inject [NoDelay] to resolve at once.
type Delayer interface {
	// Wait blocks until the delay elapses or ctx is done. It returns
	// ctx.Err() when the wait was cut short.
	Wait(ctx context.Context) error
}

type timerDelayer struct {
	d time.Duration
}

// NewDelayer returns a Delayer that waits d. A non-positive d behaves like
// [NoDelay].
func NewDelayer(d time.Duration) Delayer {
	if d <= 0 {
		return NoDelay()
	}
	return timerDelayer{d: d}
}

func (t timerDelayer) Wait(ctx context.Context) error {
	timer := time.NewTimer(t.d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type noDelay struct{}

// NoDelay returns a Delayer that completes immediately unless ctx is already
// done.
func NoDelay() Delayer {
	return noDelay{}
}

func (noDelay) Wait(ctx context.Context) error {
	return ctx.Err()
}
