package client

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"rukun-live/domain/event"
)

// bridgeServer fakes the server side of the transport: it accepts the
// upgrade, records the join frame, then plays the scripted frames.
type bridgeServer struct {
	t        *testing.T
	upgrader websocket.Upgrader
	frames   []event.Frame
	dropped  bool // close right after the join handshake

	connects atomic.Int32
	joins    chan event.Frame
}

func newBridgeServer(t *testing.T, frames []event.Frame, dropped bool) (*bridgeServer, string) {
	t.Helper()
	s := &bridgeServer{t: t, frames: frames, dropped: dropped, joins: make(chan event.Frame, 8)}
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)
	return s, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func (s *bridgeServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer func() { _ = conn.Close() }()
	s.connects.Add(1)

	var join event.Frame
	if err := conn.ReadJSON(&join); err != nil {
		return
	}
	s.joins <- join

	if s.dropped {
		return
	}
	for _, frame := range s.frames {
		if err := conn.WriteJSON(frame); err != nil {
			return
		}
	}
	// Hold the connection open until the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func TestBridge_JoinsAndDispatchesServerEvents(t *testing.T) {
	req := require.New(t)

	frame, err := event.NewFrame(event.WirePostUpdate, event.PostPayload{Penulis: "Pak RT", Judul: "Kerja bakti"})
	req.NoError(err)
	server, url := newBridgeServer(t, []event.Frame{frame}, false)

	bus := NewBus()
	signals := make(chan Signal, 8)
	bus.Subscribe(SignalPostUpdate, func(sig Signal) { signals <- sig })

	bridge := NewBridge(slog.Default(), url, bus)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = bridge.Run(ctx) }()

	// When a logged-in identity is installed
	bridge.SetIdentity(&Identity{UserID: "u-1", Role: "warga", Block: "A", Token: "tok"})

	// Then the join handshake carries the identity triple and the token
	select {
	case join := <-server.joins:
		req.Equal("join-room", join.Event)
		var payload joinPayload
		req.NoError(json.Unmarshal(join.Data, &payload))
		req.Equal(joinPayload{UserID: "u-1", Role: "warga", Block: "A", Token: "tok"}, payload)
	case <-time.After(2 * time.Second):
		req.Fail("no join frame received")
	}

	// And the pushed frame resurfaces as a local signal
	select {
	case sig := <-signals:
		req.Equal(event.WirePostUpdate, sig.Channel)
		req.JSONEq(`{"penulis":"Pak RT","judul":"Kerja bakti"}`, string(sig.Payload))
	case <-time.After(2 * time.Second):
		req.Fail("no signal dispatched")
	}

	req.Equal(Joined, bridge.State())
}

func TestBridge_LogoutClosesTransport(t *testing.T) {
	req := require.New(t)
	server, url := newBridgeServer(t, nil, false)

	bridge := NewBridge(slog.Default(), url, NewBus())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = bridge.Run(ctx) }()

	bridge.SetIdentity(&Identity{UserID: "u-1", Role: "warga", Token: "tok"})
	select {
	case <-server.joins:
	case <-time.After(2 * time.Second):
		req.Fail("no join frame received")
	}

	// When the user logs out
	bridge.SetIdentity(nil)

	// Then the bridge parks in Disconnected and stays there
	req.Eventually(func() bool {
		return bridge.State() == Disconnected
	}, 2*time.Second, 20*time.Millisecond)
	req.Equal(int32(1), server.connects.Load())
}

func TestBridge_ReconnectsAfterDrop(t *testing.T) {
	req := require.New(t)
	server, url := newBridgeServer(t, nil, true)

	bridge := NewBridge(slog.Default(), url, NewBus())
	bridge.backoffBase = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = bridge.Run(ctx) }()

	bridge.SetIdentity(&Identity{UserID: "u-1", Role: "warga", Token: "tok"})

	// The server drops every session after the handshake; the bridge must
	// keep coming back
	req.Eventually(func() bool {
		return server.connects.Load() >= 2
	}, 3*time.Second, 50*time.Millisecond)
}

func TestBridge_WithoutIdentityStaysIdle(t *testing.T) {
	req := require.New(t)
	server, url := newBridgeServer(t, nil, false)

	bridge := NewBridge(slog.Default(), url, NewBus())

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	req.NoError(bridge.Run(ctx))

	req.Equal(Disconnected, bridge.State())
	req.Zero(server.connects.Load())
}

func TestBridge_UnknownWireEventDispatchesNothing(t *testing.T) {
	req := require.New(t)
	bus := NewBus()
	for _, kind := range []SignalKind{
		SignalPaymentUpdate, SignalPostUpdate, SignalAduanUpdate, SignalDataUpdate,
	} {
		bus.Subscribe(kind, func(Signal) { req.Fail("unknown event must not dispatch") })
	}

	bridge := NewBridge(slog.Default(), "ws://unused", bus)

	bridge.dispatch(event.Frame{Event: "some-future-channel"})
}
