package transport

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"rukun-live/domain/event"
	"rukun-live/errors"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// connection owns one websocket and its outbound buffer. It implements
// contract.FrameSink: the broadcaster pushes frames into the buffer, a single
// write pump drains it, so per-connection delivery order is preserved.
type connection struct {
	id   string
	ws   *websocket.Conn
	send chan event.Frame
	log  *slog.Logger

	mu     sync.Mutex
	closed bool
}

func newConnection(id string, ws *websocket.Conn, bufferSize int, log *slog.Logger) *connection {
	return &connection{
		id:   id,
		ws:   ws,
		send: make(chan event.Frame, bufferSize),
		log:  log,
	}
}

// Push enqueues a frame for the write pump. A full buffer means a slow or
// dead client; the frame is dropped and reported so the broadcaster can
// count it. There is no backpressure towards the publisher.
//
// The broadcaster can hold this sink past the client's teardown, so Push
// and close share the connection mutex: after close it reports
// ErrConnectionClosed instead of sending on a closed channel.
func (c *connection) Push(ctx context.Context, f event.Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.ErrConnectionClosed
	}
	select {
	case c.send <- f:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return errors.ErrSlowConsumer
	}
}

// close stops accepting frames and lets the write pump drain and exit.
// Safe to call more than once.
func (c *connection) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// writePump drains the send buffer onto the websocket. It exits on the first
// write error or when the send channel closes; the read pump notices the
// broken socket and unregisters the connection.
func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteJSON(frame); err != nil {
				c.log.Debug("Write failed, closing connection", "conn_id", c.id, "error", err)
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
