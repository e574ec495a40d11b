package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"rukun-live/domain"
	"rukun-live/domain/event"
	"rukun-live/observability"
	"rukun-live/runtime"
	"rukun-live/runtime/workers"
)

type discardSink struct{}

func (discardSink) Push(ctx context.Context, f event.Frame) error { return nil }

func newService(t *testing.T) (*NotifyService, *observability.Monitor) {
	t.Helper()
	log := slog.Default()
	monitor := observability.NewMonitor()
	orchestrator := runtime.NewOrchestrator(log,
		workers.NewSupervisor(log, 100*time.Millisecond),
		runtime.NewRegistry(), monitor, 16, time.Second, time.Minute, '*')
	return NewNotifyService(orchestrator), monitor
}

func TestNotifyService_CommandsArePublished(t *testing.T) {
	req := require.New(t)
	service, monitor := newService(t)

	service.PaymentCreated(domain.PaymentCreatedCommand{
		Nama: "Budi", Blok: "B", JenisPembayaran: "iuran", OriginUserID: "u-1",
	})
	service.ComplaintCreated(domain.ComplaintCreatedCommand{
		Nama: "Siti", Blok: "A", Judul: "Lampu", OriginUserID: "u-2",
	})
	service.PostCreated(domain.PostCreatedCommand{
		Penulis: "Pak RT", Judul: "Halo", OriginUserID: "u-3",
	})

	// Publishing is fire-and-forget; the pipeline accepted all three
	req.Equal(uint64(3), monitor.Snapshot().EventsPublished)
	req.Zero(monitor.Snapshot().EventsDropped)
}

func TestNotifyService_JoinLeaveLifecycle(t *testing.T) {
	req := require.New(t)
	service, monitor := newService(t)

	service.Join("c-1", domain.Identity{UserID: "u-1", Role: domain.RoleWarga}, discardSink{})
	req.Equal(int64(1), monitor.Snapshot().ActiveConnections)

	service.Leave("c-1")
	req.Zero(monitor.Snapshot().ActiveConnections)
}

func TestParseOrNewID(t *testing.T) {
	req := require.New(t)

	// A collaborator-provided UUID is kept so a later status change can
	// settle the matching read model entry
	known := uuid.New()
	req.Equal(known, parseOrNewID(known.String()))

	// Anything else gets a fresh id
	generated := parseOrNewID("rec_42")
	req.NotEqual(uuid.Nil, generated)
}
