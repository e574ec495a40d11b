//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"rukun-live/domain"
	"rukun-live/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink consumes domain events in-process (read model, projections, logs).
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// FrameSink pushes one wire frame towards a single live connection.
type FrameSink interface {
	Push(ctx context.Context, f event.Frame) error
}

// Member is a registered connection resolved from the registry.
type Member struct {
	ConnID   string
	Identity domain.Identity
	Sink     FrameSink
}

type IRegistry interface {
	Register(connID string, identity domain.Identity, sink FrameSink)
	Unregister(connID string)
	MembersOf(room domain.RoomKey) []Member
	All() []Member
	Size() int
}

// IBroadcaster is the inbound surface the business logic publishes to.
// Publishing must never fail the business operation that triggered it.
type IBroadcaster interface {
	Publish(e event.DomainEvent)
}
