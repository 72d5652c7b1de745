package client

import (
	"context"
	"sync"
	"time"
)

// rateGate is the client's throttle marker. It holds a single channel that is
// closed when it is safe to send the next request. Installing a cooldown
// replaces the channel wholesale, so at most one active window is tracked and
// a later discovery overwrites an earlier one rather than stacking on top of
// it.
//
// A request that has already taken its snapshot of the channel is unaffected
// by a concurrent replacement; the gate only blocks the point right before
// sending.
type rateGate struct {
	mu    sync.Mutex
	ready chan struct{}
}

// newRateGate returns a gate in the already-satisfied state.
func newRateGate() *rateGate {
	ch := make(chan struct{})
	close(ch)
	return &rateGate{ready: ch}
}

// wait blocks until the current gate opens or ctx is done. A no-op when no
// cooldown is active.
func (g *rateGate) wait(ctx context.Context) error {
	g.mu.Lock()
	ch := g.ready
	g.mu.Unlock()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// hold closes the gate for d. Waiters that arrive after this call block until
// the window elapses; an abandoned previous window still fires its timer but
// nothing observes it.
func (g *rateGate) hold(d time.Duration) {
	if d <= 0 {
		return
	}
	ch := make(chan struct{})
	g.mu.Lock()
	g.ready = ch
	g.mu.Unlock()

	time.AfterFunc(d, func() { close(ch) })
}
