package runtime

import (
	"sync"

	"github.com/samber/lo"

	"rukun-live/contract"
	"rukun-live/domain"
)

// Registry tracks each live transport connection and the identity attached
// to it. It is the only mutable shared state of the realtime layer; all
// access is guarded by the mutex. Room membership is derived from the
// identity on every lookup, never stored.
type Registry struct {
	mu    sync.RWMutex
	Conns map[string]contract.Member // connectionID -> member
}

func NewRegistry() *Registry {
	return &Registry{Conns: make(map[string]contract.Member)}
}

// Register records the identity and sink for a connection. Registering the
// same connectionID again simply overwrites the entry: duplicate joins on
// rapid reconnect are accepted, and registering twice with the same identity
// yields the same membership as registering once.
func (r *Registry) Register(connID string, identity domain.Identity, sink contract.FrameSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Conns[connID] = contract.Member{ConnID: connID, Identity: identity, Sink: sink}
}

// Unregister removes a connection. Unknown ids are a success: the entry is
// already gone and there is nothing to report.
func (r *Registry) Unregister(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.Conns, connID)
}

// MembersOf resolves the connections belonging to a room by recomputing each
// identity's derived rooms. Returns nil when the room has no members.
func (r *Registry) MembersOf(room domain.RoomKey) []contract.Member {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var members []contract.Member
	for _, m := range r.Conns {
		for _, candidate := range m.Identity.Rooms() {
			if candidate == room {
				members = append(members, m)
				break
			}
		}
	}
	return members
}

// All returns every registered connection, for broad data-changed fan-outs.
func (r *Registry) All() []contract.Member {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Values(r.Conns)
}

func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.Conns)
}
