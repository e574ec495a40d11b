package workers

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rukun-live/contract"
	"rukun-live/domain"
	"rukun-live/domain/event"
	"rukun-live/errors"
	"rukun-live/mocks"
	"rukun-live/observability"
)

// memberRegistry derives room membership from identities, like the runtime
// registry does, without importing it (that would cycle).
type memberRegistry struct {
	members []contract.Member
}

func (r *memberRegistry) Register(connID string, identity domain.Identity, sink contract.FrameSink) {
	r.members = append(r.members, contract.Member{ConnID: connID, Identity: identity, Sink: sink})
}

func (r *memberRegistry) Unregister(connID string) {}

func (r *memberRegistry) MembersOf(room domain.RoomKey) []contract.Member {
	var out []contract.Member
	for _, m := range r.members {
		for _, candidate := range m.Identity.Rooms() {
			if candidate == room {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

func (r *memberRegistry) All() []contract.Member { return r.members }

func (r *memberRegistry) Size() int { return len(r.members) }

type recordSink struct {
	mu     sync.Mutex
	frames []event.Frame
	fail   bool
}

func (s *recordSink) Push(ctx context.Context, f event.Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.ErrSlowConsumer
	}
	s.frames = append(s.frames, f)
	return nil
}

func (s *recordSink) received() []event.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

func newBroadcastWorker(registry contract.IRegistry, sinks []contract.EventSink,
	monitor *observability.Monitor) *BroadcastWorker {
	return NewBroadcastWorker(slog.Default(), registry, sinks,
		make(chan event.DomainEvent), monitor, 100*time.Millisecond)
}

func TestBroadcast_PaymentReachesAdminAndPayerBlockOnly(t *testing.T) {
	req := require.New(t)
	registry := &memberRegistry{}

	// Given an admin, a resident of block B and a resident of block A
	admin := &recordSink{}
	wargaB := &recordSink{}
	wargaA := &recordSink{}
	registry.Register("c-admin", domain.Identity{UserID: "u-admin", Role: domain.RoleAdmin}, admin)
	registry.Register("c-b", domain.Identity{UserID: "u-b", Role: domain.RoleWarga, Block: "B"}, wargaB)
	registry.Register("c-a", domain.Identity{UserID: "u-a", Role: domain.RoleWarga, Block: "A"}, wargaA)

	worker := newBroadcastWorker(registry, nil, observability.NewMonitor())

	// When a payment from block B is broadcast
	worker.Broadcast(context.Background(), event.PaymentCreated{
		Nama: "Budi", Blok: "B", JenisPembayaran: "iuran", OriginUserID: "u-b",
	})

	// Then the admin and block B each got exactly one frame, block A nothing
	req.Len(admin.received(), 1)
	req.Len(wargaB.received(), 1)
	req.Empty(wargaA.received())
	req.Equal(event.WirePaymentNotification, admin.received()[0].Event)
}

func TestBroadcast_OverlappingRoomsDeliverOnce(t *testing.T) {
	req := require.New(t)
	registry := &memberRegistry{}

	// Given the payer itself, member of both its user room and its block room
	payer := &recordSink{}
	registry.Register("c-payer",
		domain.Identity{UserID: "u-b", Role: domain.RoleWarga, Block: "B"}, payer)

	worker := newBroadcastWorker(registry, nil, observability.NewMonitor())

	worker.Broadcast(context.Background(), event.PaymentCreated{
		Nama: "Budi", Blok: "B", JenisPembayaran: "iuran", OriginUserID: "u-b",
	})

	// Then the overlapping rooms still produce a single delivery
	req.Len(payer.received(), 1)
}

func TestBroadcast_DeadConnectionDoesNotAbortFanout(t *testing.T) {
	req := require.New(t)
	registry := &memberRegistry{}
	monitor := observability.NewMonitor()

	dead := &recordSink{fail: true}
	alive := &recordSink{}
	registry.Register("c-dead", domain.Identity{UserID: "u-1", Role: domain.RoleAdmin}, dead)
	registry.Register("c-alive", domain.Identity{UserID: "u-2", Role: domain.RoleAdmin}, alive)

	worker := newBroadcastWorker(registry, nil, monitor)

	worker.Broadcast(context.Background(), event.ComplaintCreated{
		Nama: "Siti", Blok: "A", Judul: "Lampu jalan", OriginUserID: "u-3",
	})

	// Then the healthy connection was still served
	req.Len(alive.received(), 1)
	req.Equal(uint64(1), monitor.Snapshot().DeliveryFailures)
	req.Equal(uint64(1), monitor.Snapshot().Deliveries)
}

func TestBroadcast_PostCreatedBroadcastsToEveryone(t *testing.T) {
	req := require.New(t)
	registry := &memberRegistry{}

	ketua := &recordSink{}
	warga := &recordSink{}
	registry.Register("c-ketua", domain.Identity{UserID: "u-rt", Role: domain.RoleKetua}, ketua)
	registry.Register("c-warga", domain.Identity{UserID: "u-w", Role: domain.RoleWarga, Block: "A"}, warga)

	worker := newBroadcastWorker(registry, nil, observability.NewMonitor())

	worker.Broadcast(context.Background(), event.PostCreated{
		Penulis: "Pak RT", Judul: "Kerja bakti", OriginUserID: "u-rt",
	})

	// The chairman gets the notify plus the broad update, the resident only
	// the broad update
	req.Len(ketua.received(), 2)
	req.Len(warga.received(), 1)
	req.Equal(event.WirePostUpdate, warga.received()[0].Event)
}

func TestBroadcast_PermanentSinksConsumeEveryEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	evt := event.PostCreated{Penulis: "Pak RT", Judul: "Kerja bakti", OriginUserID: "u-rt"}

	sinkMock := mocks.NewMockEventSink(ctrl)
	sinkMock.EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(1)

	worker := newBroadcastWorker(&memberRegistry{}, []contract.EventSink{sinkMock},
		observability.NewMonitor())

	worker.Broadcast(context.Background(), evt)
}

func TestBroadcastWorker_RunStopsOnContextCancel(t *testing.T) {
	req := require.New(t)

	worker := newBroadcastWorker(&memberRegistry{}, nil, observability.NewMonitor())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req.NoError(worker.Run(ctx))
}
