package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"rukun-live/domain"
	"rukun-live/domain/event"
)

// Counts is the last-observed aggregate state used for polling-based delta
// detection. It is owned exclusively by the Presenter.
type Counts struct {
	Posts            int
	Aduan            int
	PaymentsAwaiting int
}

// CountsFetcher retrieves the current aggregate counts from the server.
type CountsFetcher interface {
	FetchCounts(ctx context.Context) (Counts, error)
}

// Toaster renders a transient notification surface. Implementations decide
// how a toast looks and what the notification sound is.
type Toaster interface {
	Toast(title, message string)
	PlaySound()
}

// Presenter merges two independent notification feeds:
//
//   - the push feed renders one toast per inbound signal, immediately;
//   - the poll feed fetches aggregate counts on a fixed interval and renders
//     at most one combined toast per cycle for the positive deltas.
//
// The push path never mutates the counters; it only triggers an immediate
// silent refresh so the counters stay a single source of truth. The first
// fetch seeds the counters without toasting: a fresh session has no baseline
// to diff against. A decreasing count never toasts but is still recorded, so
// a later rise reports the true delta.
type Presenter struct {
	log      *slog.Logger
	bus      *Bus
	fetcher  CountsFetcher
	toaster  Toaster
	role     domain.Role
	interval time.Duration

	mu       sync.Mutex
	last     Counts
	seeded   bool
	rendered map[string]struct{} // push toasts shown in the current cycle

	invalidate chan struct{}
}

func NewPresenter(log *slog.Logger, bus *Bus, fetcher CountsFetcher,
	toaster Toaster, role domain.Role, interval time.Duration) *Presenter {
	return &Presenter{
		log:        log,
		bus:        bus,
		fetcher:    fetcher,
		toaster:    toaster,
		role:       role,
		interval:   interval,
		rendered:   make(map[string]struct{}),
		invalidate: make(chan struct{}, 1),
	}
}

// Run subscribes to the signal bus and drives the polling loop until ctx
// ends. Cancelling ctx is the teardown path: it detaches every subscription
// and stops the ticker, so no stale timer can fire after unmount.
func (p *Presenter) Run(ctx context.Context) error {
	for _, kind := range []SignalKind{
		SignalPaymentUpdate, SignalPostUpdate, SignalAduanUpdate, SignalDataUpdate,
	} {
		unsubscribe := p.bus.Subscribe(kind, p.onSignal)
		defer unsubscribe()
	}

	// Seed the baseline before the first tick.
	p.poll(ctx, true)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.poll(ctx, false)
		case <-p.invalidate:
			p.poll(ctx, true)
		}
	}
}

// onSignal is the push feed: renders one toast per distinct event, then
// invalidates the counters. Delivering the same event twice within one
// polling cycle renders a single toast (dedup is per cycle, not per event).
func (p *Presenter) onSignal(sig Signal) {
	key := sig.Channel + "|" + string(sig.Payload)

	p.mu.Lock()
	if _, dup := p.rendered[key]; dup {
		p.mu.Unlock()
		return
	}
	p.rendered[key] = struct{}{}
	p.mu.Unlock()

	if title, message, ok := p.pushToast(sig); ok {
		p.toaster.Toast(title, message)
	}

	select {
	case p.invalidate <- struct{}{}:
	default:
	}
}

// pushToast builds the toast for one pushed event, role-gated: admin-facing
// payment and complaint toasts are only rendered for ketua/admin.
func (p *Presenter) pushToast(sig Signal) (string, string, bool) {
	switch sig.Channel {
	case event.WirePaymentNotification:
		if !p.role.Privileged() {
			return "", "", false
		}
		var pay event.PaymentPayload
		if err := json.Unmarshal(sig.Payload, &pay); err != nil {
			p.log.Debug("Malformed payment payload", "error", err)
			return "", "", false
		}
		return "Pembayaran baru",
			fmt.Sprintf("%s (Blok %s): %s", pay.Nama, pay.Blok, pay.JenisPembayaran), true
	case event.WirePaymentStatusUpdate:
		var pay event.PaymentPayload
		if err := json.Unmarshal(sig.Payload, &pay); err != nil {
			p.log.Debug("Malformed payment payload", "error", err)
			return "", "", false
		}
		return "Status pembayaran",
			fmt.Sprintf("%s: %s", pay.JenisPembayaran, pay.Status), true
	case event.WireComplaintNotification:
		if !p.role.Privileged() {
			return "", "", false
		}
		var aduan event.ComplaintPayload
		if err := json.Unmarshal(sig.Payload, &aduan); err != nil {
			p.log.Debug("Malformed complaint payload", "error", err)
			return "", "", false
		}
		return "Aduan baru",
			fmt.Sprintf("%s (Blok %s): %s", aduan.Nama, aduan.Blok, aduan.Judul), true
	case event.WirePostUpdate:
		var post event.PostPayload
		if err := json.Unmarshal(sig.Payload, &post); err != nil {
			p.log.Debug("Malformed post payload", "error", err)
			return "", "", false
		}
		return "Postingan baru", fmt.Sprintf("%s: %s", post.Penulis, post.Judul), true
	case event.WireNotification:
		var note event.NotificationPayload
		if err := json.Unmarshal(sig.Payload, &note); err != nil {
			p.log.Debug("Malformed notification payload", "error", err)
			return "", "", false
		}
		return note.Title, note.Message, true
	default:
		return "", "", false
	}
}

// poll is the consistency backstop. A fetch failure keeps the stale counters
// rather than resetting them, avoiding a false "everything is new" burst on
// the next success. silent polls (baseline seeding, push invalidation)
// update the counters without rendering.
func (p *Presenter) poll(ctx context.Context, silent bool) {
	counts, err := p.fetcher.FetchCounts(ctx)
	if err != nil {
		p.log.Warn("Count poll failed, keeping stale counters", "error", err)
		return
	}

	p.mu.Lock()
	if !p.seeded {
		p.last = counts
		p.seeded = true
		p.rendered = make(map[string]struct{})
		p.mu.Unlock()
		return
	}

	var lines []string
	if counts.Posts > p.last.Posts {
		lines = append(lines, fmt.Sprintf("%d postingan baru", counts.Posts-p.last.Posts))
	}
	if counts.Aduan > p.last.Aduan {
		lines = append(lines, fmt.Sprintf("%d aduan baru", counts.Aduan-p.last.Aduan))
	}
	if counts.PaymentsAwaiting > p.last.PaymentsAwaiting {
		lines = append(lines, fmt.Sprintf("%d pembayaran menunggu konfirmasi",
			counts.PaymentsAwaiting-p.last.PaymentsAwaiting))
	}

	// Counters follow the observed state in both directions. The push dedup
	// window only resets on a real cycle boundary, not on silent refreshes.
	p.last = counts
	if !silent {
		p.rendered = make(map[string]struct{})
	}
	p.mu.Unlock()

	if silent || len(lines) == 0 {
		return
	}

	p.toaster.Toast("Pemberitahuan", strings.Join(lines, ", "))
	p.toaster.PlaySound()
}

// Last returns the current counter baseline.
func (p *Presenter) Last() Counts {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}
