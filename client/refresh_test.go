package client

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRefreshCoordinator_RefetchesOnMatchingSignal(t *testing.T) {
	req := require.New(t)
	bus := NewBus()
	coordinator := NewRefreshCoordinator(slog.Default(), bus)
	defer coordinator.Close()

	paymentFetches := 0
	postFetches := 0
	coordinator.Register(SignalPaymentUpdate, func(context.Context) { paymentFetches++ })
	coordinator.Register(SignalPostUpdate, func(context.Context) { postFetches++ })

	// When a payment signal arrives
	bus.Publish(Signal{Kind: SignalPaymentUpdate, Channel: "payment-notification"})

	// Then only the payment view re-fetched
	req.Equal(1, paymentFetches)
	req.Zero(postFetches)
}

func TestRefreshCoordinator_DetachStopsRefetching(t *testing.T) {
	req := require.New(t)
	bus := NewBus()
	coordinator := NewRefreshCoordinator(slog.Default(), bus)
	defer coordinator.Close()

	fetches := 0
	detach := coordinator.Register(SignalAduanUpdate, func(context.Context) { fetches++ })

	bus.Publish(Signal{Kind: SignalAduanUpdate})

	// When the view unmounts
	detach()
	bus.Publish(Signal{Kind: SignalAduanUpdate})

	req.Equal(1, fetches)
}

func TestRefreshCoordinator_CloseDetachesFromBus(t *testing.T) {
	req := require.New(t)
	bus := NewBus()
	coordinator := NewRefreshCoordinator(slog.Default(), bus)

	fetches := 0
	coordinator.Register(SignalDataUpdate, func(context.Context) { fetches++ })

	coordinator.Close()
	bus.Publish(Signal{Kind: SignalDataUpdate})

	req.Zero(fetches)
}
