package workers

import (
	"context"
	"log/slog"

	"github.com/abadojack/whatlanggo"

	"rukun-live/domain/event"
	"rukun-live/moderation"
)

// ModerationWorker sits between event ingestion and broadcast. User-authored
// text (complaint titles, comments, post bodies) is censored before it
// reaches any connected client; payment events carry no free text and pass
// through untouched.
type ModerationWorker struct {
	moderator moderation.Moderator
	rawEvents chan event.DomainEvent
	events    chan event.DomainEvent
	log       *slog.Logger
}

func NewModerationWorker(moderator moderation.Moderator,
	rawEvents, events chan event.DomainEvent, log *slog.Logger) *ModerationWorker {
	return &ModerationWorker{
		moderator: moderator,
		rawEvents: rawEvents,
		events:    events,
		log:       log,
	}
}

func (w *ModerationWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case e, ok := <-w.rawEvents:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case w.events <- w.sanitize(e):
			}
		}
	}
}

func (w *ModerationWorker) sanitize(e event.DomainEvent) event.DomainEvent {
	switch evt := e.(type) {
	case event.ComplaintCreated:
		evt.Judul = w.censor(evt.Judul, evt.OriginUserID)
		return evt
	case event.ComplaintCommented:
		evt.Judul = w.censor(evt.Judul, evt.OriginUserID)
		evt.Komentar = w.censor(evt.Komentar, evt.OriginUserID)
		return evt
	case event.PostCreated:
		evt.Judul = w.censor(evt.Judul, evt.OriginUserID)
		evt.Konten = w.censor(evt.Konten, evt.OriginUserID)
		return evt
	default:
		return e
	}
}

func (w *ModerationWorker) censor(text, author string) string {
	sanitized, foundWords := w.moderator.Censor(text)
	if len(foundWords) > 0 {
		info := whatlanggo.Detect(text)
		w.log.Warn("Censored user text",
			"author", author,
			"lang", info.Lang.Iso6391(),
			"words", len(foundWords))
	}
	return sanitized
}
