package runtime

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"rukun-live/contract"
	"rukun-live/domain"
	"rukun-live/domain/event"
	"rukun-live/moderation"
	"rukun-live/observability"
	"rukun-live/runtime/workers"
)

//go:embed censored/*
var censoredFolder embed.FS

// Orchestrator owns the event pipeline: inbound domain events flow through
// moderation into the broadcast worker, which fans them out to the registry's
// connections and the permanent sinks. It implements contract.IBroadcaster
// for the business side and exposes registration for the transport side.
type Orchestrator struct {
	mu              sync.Mutex
	log             *slog.Logger
	supervisor      contract.ISupervisor
	registry        contract.IRegistry
	monitor         *observability.Monitor
	permanentSinks  []contract.EventSink
	rawEvents       chan event.DomainEvent
	domainEvents    chan event.DomainEvent
	sinkTimeout     time.Duration
	heartbeat       time.Duration
	charReplacement rune
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	registry contract.IRegistry, monitor *observability.Monitor,
	bufferSize int, sinkTimeout, heartbeat time.Duration,
	charReplacement rune) *Orchestrator {
	return &Orchestrator{
		log:             log,
		supervisor:      supervisor,
		registry:        registry,
		monitor:         monitor,
		rawEvents:       make(chan event.DomainEvent, bufferSize),
		domainEvents:    make(chan event.DomainEvent, bufferSize),
		sinkTimeout:     sinkTimeout,
		heartbeat:       heartbeat,
		charReplacement: charReplacement,
	}
}

// Add registers permanent sinks consuming every broadcast event (read model,
// projections). Must be called before Start.
func (o *Orchestrator) Add(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// Publish hands a domain event to the pipeline. It never blocks and never
// fails the caller: when the buffer is full the event is dropped and counted,
// the polling fallback covers the gap.
func (o *Orchestrator) Publish(e event.DomainEvent) {
	select {
	case o.rawEvents <- e:
		o.monitor.IncrPublished()
	default:
		o.monitor.IncrDropped()
		o.log.Warn(fmt.Sprintf("Event buffer full, dropping %s", e.Kind()))
	}
}

// RegisterConnection attaches an identity and its sink to a live connection.
// Re-registering the same connection overwrites the previous entry.
func (o *Orchestrator) RegisterConnection(connID string, identity domain.Identity, sink contract.FrameSink) {
	o.registry.Register(connID, identity, sink)
	o.monitor.ConnOpened()
}

// UnregisterConnection disconnects a client. Unknown ids are a success.
func (o *Orchestrator) UnregisterConnection(connID string) {
	o.registry.Unregister(connID)
	o.monitor.ConnClosed()
}

// Start prepares all workers and hands them to the supervisor. It blocks
// until the supervision context ends; callers run it in a goroutine.
func (o *Orchestrator) Start(ctx context.Context) error {
	// Preparation phase (no lock): I/O and automaton build happen here.
	moderationWorker, err := o.prepareModeration("censored", o.charReplacement)
	if err != nil {
		return err
	}

	o.mu.Lock()
	broadcastWorker := workers.NewBroadcastWorker(
		o.log, o.registry, o.permanentSinks, o.domainEvents, o.monitor, o.sinkTimeout)
	o.supervisor.Add(moderationWorker)
	o.supervisor.Add(broadcastWorker)
	o.supervisor.Add(workers.NewHeartbeatWorker(o.log, o.monitor, o.heartbeat))
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
	return nil
}

// prepareModeration loads censored words and builds the Aho-Corasick automaton.
func (o *Orchestrator) prepareModeration(path string, charReplacement rune) (contract.Worker, error) {
	loader := NewCensoredLoader(censoredFolder)
	data, err := loader.LoadAll(path)
	if err != nil {
		return nil, err
	}

	o.log.Info(fmt.Sprintf("%d censored files loaded [%s]",
		len(data.Languages), strings.Join(data.Languages, ",")))
	o.log.Info(fmt.Sprintf("%d unique censored words loaded", len(data.Words)))

	moderator, err := moderation.NewModerator(data.Words, charReplacement)
	if err != nil {
		return nil, err
	}

	return workers.NewModerationWorker(moderator, o.rawEvents, o.domainEvents, o.log), nil
}

// Stop initiates a graceful shutdown by cancelling the supervision context.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
