// Package observability holds logging-grade telemetry for the realtime layer.
package observability

import (
	"sync/atomic"
)

// Stats is a point-in-time snapshot of the fan-out counters.
type Stats struct {
	EventsPublished   uint64 `json:"events_published"`
	EventsDropped     uint64 `json:"events_dropped"`
	Deliveries        uint64 `json:"deliveries"`
	DeliveryFailures  uint64 `json:"delivery_failures"`
	ActiveConnections int64  `json:"active_connections"`
}

// Monitor counts what the broadcaster does. All counters are atomic; the
// monitor is shared by the orchestrator, the transport, and the heartbeat
// worker.
type Monitor struct {
	eventsPublished  atomic.Uint64
	eventsDropped    atomic.Uint64
	deliveries       atomic.Uint64
	deliveryFailures atomic.Uint64
	connections      atomic.Int64
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) IncrPublished() { m.eventsPublished.Add(1) }

func (m *Monitor) IncrDropped() { m.eventsDropped.Add(1) }

func (m *Monitor) IncrDeliveries() { m.deliveries.Add(1) }

func (m *Monitor) IncrDeliveryFailures() { m.deliveryFailures.Add(1) }

func (m *Monitor) ConnOpened() { m.connections.Add(1) }

func (m *Monitor) ConnClosed() { m.connections.Add(-1) }

func (m *Monitor) Snapshot() Stats {
	return Stats{
		EventsPublished:   m.eventsPublished.Load(),
		EventsDropped:     m.eventsDropped.Load(),
		Deliveries:        m.deliveries.Load(),
		DeliveryFailures:  m.deliveryFailures.Load(),
		ActiveConnections: m.connections.Load(),
	}
}
