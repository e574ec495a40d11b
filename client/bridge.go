package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"rukun-live/domain/event"
)

// State is the bridge's connection state machine.
type State int32

const (
	Disconnected State = iota
	Connecting
	Joined
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Joined:
		return "joined"
	default:
		return "disconnected"
	}
}

// Identity is the client-side identity plus the token proving it.
type Identity struct {
	UserID string
	Role   string
	Block  string
	Token  string
}

type joinPayload struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Block  string `json:"block,omitempty"`
	Token  string `json:"token"`
}

// Bridge owns the single transport connection of a client session. Whenever
// an identity is present and the state is Disconnected it attempts to
// connect, performs the join-room handshake, and republishes every inbound
// server event as a process-local signal. Losing the identity (logout)
// forcibly closes the transport from any state; that is the only externally
// triggered cancellation.
type Bridge struct {
	log *slog.Logger
	url string
	bus *Bus

	mu       sync.Mutex
	state    State
	identity *Identity
	conn     *websocket.Conn

	backoffBase time.Duration
	backoffMax  time.Duration
	kick        chan struct{}
}

func NewBridge(log *slog.Logger, url string, bus *Bus) *Bridge {
	return &Bridge{
		log:         log,
		url:         url,
		bus:         bus,
		state:       Disconnected,
		backoffBase: 500 * time.Millisecond,
		backoffMax:  30 * time.Second,
		kick:        make(chan struct{}, 1),
	}
}

// State returns the current connection state.
func (b *Bridge) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// SetIdentity installs or clears the session identity. Passing nil closes
// the transport immediately and parks the bridge in Disconnected.
func (b *Bridge) SetIdentity(id *Identity) {
	b.mu.Lock()
	b.identity = id
	conn := b.conn
	if id == nil {
		b.conn = nil
		b.state = Disconnected
	}
	b.mu.Unlock()

	if id == nil {
		if conn != nil {
			_ = conn.Close()
		}
		return
	}

	// Wake the run loop so a freshly logged-in session connects right away.
	select {
	case b.kick <- struct{}{}:
	default:
	}
}

// Run drives the state machine until ctx ends. It is non-blocking towards
// its consumers: inbound events are re-dispatched synchronously on this
// goroutine, preserving the transport's per-connection order.
func (b *Bridge) Run(ctx context.Context) error {
	backoff := b.backoffBase
	for {
		if ctx.Err() != nil {
			b.disconnect()
			return nil
		}

		identity := b.currentIdentity()
		if identity == nil {
			select {
			case <-ctx.Done():
				return nil
			case <-b.kick:
			}
			continue
		}

		if err := b.session(ctx, *identity); err != nil {
			b.log.Debug("Transport session ended", "error", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, b.backoffMax)
			continue
		}
		backoff = b.backoffBase
	}
}

// session performs one Connecting -> Joined cycle: dial, join handshake,
// then the read loop until the transport drops or the identity goes away.
func (b *Bridge) session(ctx context.Context, identity Identity) error {
	b.setState(Connecting)

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, b.url, nil)
	cancel()
	if err != nil {
		b.setState(Disconnected)
		return fmt.Errorf("dial: %w", err)
	}

	if !b.adopt(conn) {
		// Identity vanished while dialing: abandon the socket.
		_ = conn.Close()
		return nil
	}

	join, err := event.NewFrame("join-room", joinPayload{
		UserID: identity.UserID,
		Role:   identity.Role,
		Block:  identity.Block,
		Token:  identity.Token,
	})
	if err != nil {
		b.disconnect()
		return err
	}
	if err := conn.WriteJSON(join); err != nil {
		b.disconnect()
		return fmt.Errorf("join: %w", err)
	}

	b.setState(Joined)
	b.log.Info("Joined realtime rooms", "user_id", identity.UserID, "role", identity.Role)

	for {
		var frame event.Frame
		if err := conn.ReadJSON(&frame); err != nil {
			wasLogout := b.currentIdentity() == nil
			b.disconnect()
			if wasLogout {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
		b.dispatch(frame)
	}
}

// dispatch maps a wire channel to its local signal. Unknown channels
// dispatch nothing and never raise.
func (b *Bridge) dispatch(frame event.Frame) {
	var kind SignalKind
	switch frame.Event {
	case event.WirePaymentNotification, event.WirePaymentStatusUpdate:
		kind = SignalPaymentUpdate
	case event.WireComplaintNotification:
		kind = SignalAduanUpdate
	case event.WirePostUpdate:
		kind = SignalPostUpdate
	case event.WireNotification:
		kind = SignalDataUpdate
	default:
		b.log.Debug("Ignoring unknown wire event", "event", frame.Event)
		return
	}

	b.bus.Publish(Signal{
		Kind:    kind,
		Channel: frame.Event,
		Payload: append(json.RawMessage(nil), frame.Data...),
	})
}

func (b *Bridge) currentIdentity() *Identity {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.identity == nil {
		return nil
	}
	id := *b.identity
	return &id
}

// adopt stores the live socket unless the identity disappeared meanwhile.
func (b *Bridge) adopt(conn *websocket.Conn) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.identity == nil {
		return false
	}
	b.conn = conn
	return true
}

func (b *Bridge) disconnect() {
	b.mu.Lock()
	conn := b.conn
	b.conn = nil
	b.state = Disconnected
	b.mu.Unlock()
	if conn != nil {
		_ = conn.Close()
	}
}

func (b *Bridge) setState(s State) {
	b.mu.Lock()
	b.state = s
	b.mu.Unlock()
}
