// Package sink provides permanent event consumers fed by the broadcaster.
package sink

import (
	"context"
	"fmt"
	"log/slog"

	"rukun-live/domain"
	"rukun-live/domain/event"
	"rukun-live/repositories"
)

// ReadModelSink maintains the notification read model behind the polling
// count endpoints. It consumes every broadcast event: posts and complaints
// accumulate, payments accumulate while awaiting and are settled when an
// admin confirms or rejects them.
type ReadModelSink struct {
	repository repositories.ICounterRepository
	log        *slog.Logger
}

func NewReadModelSink(repository repositories.ICounterRepository, log *slog.Logger) ReadModelSink {
	return ReadModelSink{repository: repository, log: log}
}

func (s ReadModelSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.PostCreated:
		return s.repository.StorePost(repositories.PostRecord{
			ID:      evt.ID,
			Penulis: evt.Penulis,
			Judul:   evt.Judul,
			At:      evt.At,
		})
	case event.ComplaintCreated:
		return s.repository.StoreComplaint(repositories.ComplaintRecord{
			ID:    evt.ID,
			Nama:  evt.Nama,
			Blok:  evt.Blok,
			Judul: evt.Judul,
			At:    evt.At,
		})
	case event.PaymentCreated:
		return s.repository.StoreAwaitingPayment(repositories.PaymentRecord{
			ID:              evt.ID,
			Nama:            evt.Nama,
			Blok:            evt.Blok,
			JenisPembayaran: evt.JenisPembayaran,
			Status:          domain.PaymentMenunggu,
			At:              evt.At,
		})
	case event.PaymentStatusChanged:
		if evt.Status.Settled() {
			return s.repository.SettlePayment(evt.ID)
		}
		return nil
	default:
		s.log.Debug(fmt.Sprintf("Not tracked by read model : %v", evt.Kind()))
		return nil
	}
}
