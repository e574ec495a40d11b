//go:generate go run go.uber.org/mock/mockgen -source=notify_service.go -destination=../mocks/mock_notify_service.go -package=mocks
package services

import (
	"time"

	"github.com/google/uuid"

	"rukun-live/contract"
	"rukun-live/domain"
	"rukun-live/domain/event"
	"rukun-live/runtime"
)

// INotifyService is the surface the CRUD collaborator calls after a business
// mutation, plus the connection lifecycle used by the transport. Publishing
// is fire-and-forget: no method ever reports a delivery failure.
type INotifyService interface {
	PaymentCreated(cmd domain.PaymentCreatedCommand)
	PaymentStatusChanged(cmd domain.PaymentStatusChangedCommand)
	ComplaintCreated(cmd domain.ComplaintCreatedCommand)
	ComplaintCommented(cmd domain.ComplaintCommentedCommand)
	PostCreated(cmd domain.PostCreatedCommand)
	Join(connID string, identity domain.Identity, sink contract.FrameSink)
	Leave(connID string)
}

type NotifyService struct {
	orchestrator *runtime.Orchestrator
}

func NewNotifyService(o *runtime.Orchestrator) *NotifyService {
	return &NotifyService{orchestrator: o}
}

func (s *NotifyService) PaymentCreated(cmd domain.PaymentCreatedCommand) {
	s.orchestrator.Publish(event.PaymentCreated{
		ID:              uuid.New(),
		Nama:            cmd.Nama,
		Blok:            cmd.Blok,
		JenisPembayaran: cmd.JenisPembayaran,
		OriginUserID:    cmd.OriginUserID,
		At:              time.Now().UTC(),
	})
}

func (s *NotifyService) PaymentStatusChanged(cmd domain.PaymentStatusChangedCommand) {
	s.orchestrator.Publish(event.PaymentStatusChanged{
		ID:              parseOrNewID(cmd.PaymentID),
		Nama:            cmd.Nama,
		Blok:            cmd.Blok,
		JenisPembayaran: cmd.JenisPembayaran,
		Status:          cmd.Status,
		OriginUserID:    cmd.OriginUserID,
		At:              time.Now().UTC(),
	})
}

func (s *NotifyService) ComplaintCreated(cmd domain.ComplaintCreatedCommand) {
	s.orchestrator.Publish(event.ComplaintCreated{
		ID:           uuid.New(),
		Nama:         cmd.Nama,
		Blok:         cmd.Blok,
		Judul:        cmd.Judul,
		OriginUserID: cmd.OriginUserID,
		At:           time.Now().UTC(),
	})
}

func (s *NotifyService) ComplaintCommented(cmd domain.ComplaintCommentedCommand) {
	s.orchestrator.Publish(event.ComplaintCommented{
		ID:           parseOrNewID(cmd.ComplaintID),
		Nama:         cmd.Nama,
		Blok:         cmd.Blok,
		Judul:        cmd.Judul,
		Komentar:     cmd.Komentar,
		OriginUserID: cmd.OriginUserID,
		At:           time.Now().UTC(),
	})
}

func (s *NotifyService) PostCreated(cmd domain.PostCreatedCommand) {
	s.orchestrator.Publish(event.PostCreated{
		ID:           uuid.New(),
		Penulis:      cmd.Penulis,
		Judul:        cmd.Judul,
		Konten:       cmd.Konten,
		OriginUserID: cmd.OriginUserID,
		At:           time.Now().UTC(),
	})
}

func (s *NotifyService) Join(connID string, identity domain.Identity, sink contract.FrameSink) {
	s.orchestrator.RegisterConnection(connID, identity, sink)
}

func (s *NotifyService) Leave(connID string) {
	s.orchestrator.UnregisterConnection(connID)
}

// parseOrNewID keeps the collaborator's record id when it is a UUID, so a
// later status change can settle the matching read model entry.
func parseOrNewID(s string) uuid.UUID {
	if id, err := uuid.Parse(s); err == nil {
		return id
	}
	return uuid.New()
}
