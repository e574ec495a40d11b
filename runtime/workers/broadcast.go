package workers

import (
	"context"
	"log/slog"
	"time"

	"rukun-live/contract"
	"rukun-live/domain/event"
	"rukun-live/observability"
)

// BroadcastWorker delivers domain events to the connections selected by the
// room router and to the permanent in-process sinks (read model).
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering across connections, durability, or retries. A dead connection is
// logged and skipped; it never aborts delivery to the remaining members, and
// it never propagates back to the business operation that published the event.
//
// A connection matching multiple rooms of one fan-out receives the frame
// exactly once: delivery is deduplicated per connectionID, not per room.
type BroadcastWorker struct {
	log            *slog.Logger
	registry       contract.IRegistry
	permanentSinks []contract.EventSink
	events         chan event.DomainEvent
	monitor        *observability.Monitor
	sinkTimeout    time.Duration
}

func NewBroadcastWorker(log *slog.Logger, registry contract.IRegistry,
	permanentSinks []contract.EventSink, events chan event.DomainEvent,
	monitor *observability.Monitor, sinkTimeout time.Duration) *BroadcastWorker {
	return &BroadcastWorker{
		log:            log,
		registry:       registry,
		permanentSinks: permanentSinks,
		events:         events,
		monitor:        monitor,
		sinkTimeout:    sinkTimeout,
	}
}

func (w *BroadcastWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping broadcast")
			return nil
		case evt, ok := <-w.events:
			if !ok {
				return nil
			}
			w.Broadcast(ctx, evt)
		}
	}
}

// Broadcast feeds the permanent sinks first, then pushes the wire frames of
// the event to every member of its rooms.
func (w *BroadcastWorker) Broadcast(ctx context.Context, evt event.DomainEvent) {
	for _, sink := range w.permanentSinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Error("Permanent sink failed", "kind", evt.Kind(), "error", err)
		}
		cancel()
	}

	fanouts, err := event.FanoutsFor(evt)
	if err != nil {
		w.log.Error("Dropping undeliverable event", "kind", evt.Kind(), "error", err)
		return
	}

	for _, fanout := range fanouts {
		w.deliver(ctx, evt, fanout)
	}
}

func (w *BroadcastWorker) deliver(ctx context.Context, evt event.DomainEvent, fanout event.Fanout) {
	var members []contract.Member
	if fanout.Everyone {
		members = w.registry.All()
	} else {
		for _, room := range fanout.Rooms {
			members = append(members, w.registry.MembersOf(room)...)
		}
	}

	seen := make(map[string]struct{}, len(members))
	for _, member := range members {
		if _, dup := seen[member.ConnID]; dup {
			continue
		}
		seen[member.ConnID] = struct{}{}

		pushCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		err := member.Sink.Push(pushCtx, fanout.Frame)
		cancel()
		if err != nil {
			w.monitor.IncrDeliveryFailures()
			w.log.Warn("Delivery failed, skipping connection",
				"conn_id", member.ConnID,
				"user_id", member.Identity.UserID,
				"channel", fanout.Frame.Event,
				"error", err)
			continue
		}
		w.monitor.IncrDeliveries()
	}

	w.log.Debug("Fanout delivered",
		"kind", evt.Kind(),
		"channel", fanout.Frame.Event,
		"connections", len(seen))
}
