// Package transport exposes the realtime layer over the network: a websocket
// endpoint for pushed events and plain HTTP endpoints for event ingress and
// the polling counts.
package transport

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"rukun-live/auth"
	"rukun-live/domain"
	"rukun-live/domain/event"
	"rukun-live/errors"
	"rukun-live/services"
)

// JoinRequest is the join-room handshake, the first frame a client sends
// after connecting. The identity fields must match the token claims.
type JoinRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Role   string `json:"role" validate:"required"`
	Block  string `json:"block,omitempty"`
	Token  string `json:"token" validate:"required"`
}

type Server struct {
	log        *slog.Logger
	service    services.INotifyService
	verifier   auth.Verifier
	validate   *validator.Validate
	upgrader   websocket.Upgrader
	sendBuffer int
}

func NewServer(log *slog.Logger, service services.INotifyService,
	verifier auth.Verifier, sendBuffer int) *Server {
	return &Server{
		log:        log,
		service:    service,
		verifier:   verifier,
		validate:   validator.New(),
		sendBuffer: sendBuffer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}
}

// ServeWS upgrades the request and runs the connection until the client
// disconnects. A handshake failure closes the socket without registering
// anything: the client silently retries on its next reconnect attempt and
// misses events until it succeeds, which the polling fallback covers.
func (s *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	identity, err := s.handshake(ws)
	if err != nil {
		s.log.Warn("Join handshake rejected", "error", err)
		_ = ws.Close()
		return
	}

	conn := newConnection(uuid.NewString(), ws, s.sendBuffer, s.log)
	s.service.Join(conn.id, identity, conn)
	defer func() {
		s.service.Leave(conn.id)
		conn.close()
	}()

	go conn.writePump()

	s.log.Info("Client joined",
		"conn_id", conn.id,
		"user_id", identity.UserID,
		"role", identity.Role,
		"block", identity.Block)

	s.readLoop(ws, conn.id)
	s.log.Info(fmt.Sprintf("Client %s disconnected", conn.id))
}

// handshakeWait bounds how long a fresh socket may stay silent before the
// join-room frame arrives. Variable so tests can shorten it.
var handshakeWait = 10 * time.Second

// handshake reads the join-room frame, validates it, and confirms the
// declared identity against the token claims. A client that connects and
// sends nothing is cut off after handshakeWait; the post-join deadline is
// managed by readLoop.
func (s *Server) handshake(ws *websocket.Conn) (domain.Identity, error) {
	_ = ws.SetReadDeadline(time.Now().Add(handshakeWait))
	var frame event.Frame
	if err := ws.ReadJSON(&frame); err != nil {
		return domain.Identity{}, err
	}
	if frame.Event != "join-room" {
		return domain.Identity{}, fmt.Errorf("expected join-room, got %q", frame.Event)
	}

	var join JoinRequest
	if err := json.Unmarshal(frame.Data, &join); err != nil {
		return domain.Identity{}, err
	}
	if err := s.validate.Struct(join); err != nil {
		return domain.Identity{}, err
	}

	identity, err := s.verifier.VerifyToken(join.Token)
	if err != nil {
		return domain.Identity{}, err
	}
	if identity.UserID != join.UserID || string(identity.Role) != join.Role {
		return domain.Identity{}, fmt.Errorf("%w: declared %s/%s", errors.ErrIdentityMismatch, join.UserID, join.Role)
	}
	return identity, nil
}

// readLoop keeps the socket alive and detects disconnects. Inbound frames
// after the handshake carry no meaning server-side and are discarded.
func (s *Server) readLoop(ws *websocket.Conn, connID string) {
	ws.SetReadLimit(maxMessageSize)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Debug("Unexpected close", "conn_id", connID, "error", err)
			}
			return
		}
	}
}
