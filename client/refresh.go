package client

import (
	"context"
	"log/slog"
	"sync"
)

// RefreshCoordinator re-invokes the data fetches registered by interested
// views whenever a matching signal arrives, independently of whether a toast
// was shown. Each view keeps its own idempotent fetch: re-fetching replaces
// the full result set, so running it again is always safe.
type RefreshCoordinator struct {
	log *slog.Logger

	mu      sync.Mutex
	nextID  int
	fetches map[SignalKind]map[int]func(context.Context)
	unsub   []func()
}

func NewRefreshCoordinator(log *slog.Logger, bus *Bus) *RefreshCoordinator {
	c := &RefreshCoordinator{
		log:     log,
		fetches: make(map[SignalKind]map[int]func(context.Context)),
	}
	for _, kind := range []SignalKind{
		SignalPaymentUpdate, SignalPostUpdate, SignalAduanUpdate, SignalDataUpdate,
	} {
		c.unsub = append(c.unsub, bus.Subscribe(kind, c.onSignal))
	}
	return c
}

// Register attaches a view's fetch callback to a signal kind and returns the
// detach function, to be called exactly when the view unmounts.
func (c *RefreshCoordinator) Register(kind SignalKind, fetch func(context.Context)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fetches[kind] == nil {
		c.fetches[kind] = make(map[int]func(context.Context))
	}
	id := c.nextID
	c.nextID++
	c.fetches[kind][id] = fetch

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.fetches[kind], id)
	}
}

// Close detaches the coordinator from the bus.
func (c *RefreshCoordinator) Close() {
	for _, u := range c.unsub {
		u()
	}
}

func (c *RefreshCoordinator) onSignal(sig Signal) {
	c.mu.Lock()
	fns := make([]func(context.Context), 0, len(c.fetches[sig.Kind]))
	for _, fn := range c.fetches[sig.Kind] {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	if len(fns) == 0 {
		return
	}
	c.log.Debug("Refreshing views", "signal", sig.Kind, "views", len(fns))
	for _, fn := range fns {
		fn(context.Background())
	}
}
