// Package client implements the client side of the realtime layer: the event
// bridge owning the transport connection, the process-local signal bus, the
// notification presenter, and the refresh coordinator.
package client

import (
	"encoding/json"
	"sync"
)

// SignalKind names a process-local signal re-dispatched by the bridge after
// a server event arrives.
type SignalKind string

const (
	SignalPaymentUpdate SignalKind = "payment-update"
	SignalPostUpdate    SignalKind = "post-update"
	SignalAduanUpdate   SignalKind = "aduan-update"
	SignalDataUpdate    SignalKind = "data-update"
)

// Signal carries the original wire payload as detail.
type Signal struct {
	Kind    SignalKind
	Channel string // originating wire channel name
	Payload json.RawMessage
}

// Bus is the in-process signal dispatcher. Handlers run synchronously on the
// publishing goroutine, mirroring a single cooperative event loop; the mutex
// only protects subscription bookkeeping.
type Bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[SignalKind]map[int]func(Signal)
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[SignalKind]map[int]func(Signal))}
}

// Subscribe registers a handler for one signal kind and returns its
// unsubscribe function. Unsubscribing twice is harmless.
func (b *Bus) Subscribe(kind SignalKind, fn func(Signal)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[kind] == nil {
		b.handlers[kind] = make(map[int]func(Signal))
	}
	id := b.nextID
	b.nextID++
	b.handlers[kind][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[kind], id)
	}
}

// Publish dispatches a signal to every subscriber of its kind.
func (b *Bus) Publish(sig Signal) {
	b.mu.RLock()
	fns := make([]func(Signal), 0, len(b.handlers[sig.Kind]))
	for _, fn := range b.handlers[sig.Kind] {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(sig)
	}
}
