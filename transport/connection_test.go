package transport

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"rukun-live/domain/event"
	"rukun-live/errors"
)

func TestConnection_PushAfterTeardownReportsClosed(t *testing.T) {
	req := require.New(t)
	conn := newConnection("c-1", nil, 8, slog.Default())
	frame, err := event.NewFrame(event.WirePostUpdate, event.PostPayload{Penulis: "Pak RT", Judul: "Halo"})
	req.NoError(err)

	// Given a live connection accepting frames
	req.NoError(conn.Push(context.Background(), frame))

	// When the client disconnects and its teardown runs
	conn.close()
	conn.close()

	// Then a sink still held by the broadcaster fails cleanly
	req.NotPanics(func() {
		err = conn.Push(context.Background(), frame)
	})
	req.ErrorIs(err, errors.ErrConnectionClosed)
}

func TestConnection_PushRacingTeardownNeverPanics(t *testing.T) {
	req := require.New(t)
	conn := newConnection("c-2", nil, 1, slog.Default())
	frame, err := event.NewFrame(event.WireNotification, event.NotificationPayload{Title: "t", Message: "m"})
	req.NoError(err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = conn.Push(context.Background(), frame)
		}
	}()
	go func() {
		defer wg.Done()
		conn.close()
	}()

	req.NotPanics(wg.Wait)
}
