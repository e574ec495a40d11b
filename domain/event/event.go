package event

import (
	"time"

	"github.com/google/uuid"

	"rukun-live/domain"
)

// Kind is the closed set of domain event kinds carried by the realtime layer.
type Kind string

const (
	KindPaymentCreated       Kind = "payment-created"
	KindPaymentStatusChanged Kind = "payment-status-changed"
	KindComplaintCreated     Kind = "complaint-created"
	KindComplaintCommented   Kind = "complaint-commented"
	KindPostCreated          Kind = "post-created"
)

// Origin identifies the actor that triggered a domain event.
type Origin struct {
	UserID string
	Block  string
}

// DomainEvent is a notable business-state change received from the CRUD
// collaborator. Events are immutable once constructed and never persisted
// by the broadcaster; delivery is fire-and-forget.
type DomainEvent interface {
	Kind() Kind
	Origin() Origin
}

type PaymentCreated struct {
	ID              uuid.UUID
	Nama            string
	Blok            string
	JenisPembayaran string
	OriginUserID    string
	At              time.Time
}

func (e PaymentCreated) Kind() Kind { return KindPaymentCreated }

func (e PaymentCreated) Origin() Origin {
	return Origin{UserID: e.OriginUserID, Block: e.Blok}
}

type PaymentStatusChanged struct {
	ID              uuid.UUID
	Nama            string
	Blok            string
	JenisPembayaran string
	Status          domain.PaymentStatus
	OriginUserID    string
	At              time.Time
}

func (e PaymentStatusChanged) Kind() Kind { return KindPaymentStatusChanged }

func (e PaymentStatusChanged) Origin() Origin {
	return Origin{UserID: e.OriginUserID, Block: e.Blok}
}

type ComplaintCreated struct {
	ID           uuid.UUID
	Nama         string
	Blok         string
	Judul        string
	OriginUserID string
	At           time.Time
}

func (e ComplaintCreated) Kind() Kind { return KindComplaintCreated }

func (e ComplaintCreated) Origin() Origin {
	return Origin{UserID: e.OriginUserID, Block: e.Blok}
}

type ComplaintCommented struct {
	ID           uuid.UUID
	Nama         string
	Blok         string
	Judul        string
	Komentar     string
	OriginUserID string
	At           time.Time
}

func (e ComplaintCommented) Kind() Kind { return KindComplaintCommented }

func (e ComplaintCommented) Origin() Origin {
	return Origin{UserID: e.OriginUserID, Block: e.Blok}
}

type PostCreated struct {
	ID           uuid.UUID
	Penulis      string
	Judul        string
	Konten       string
	OriginUserID string
	At           time.Time
}

func (e PostCreated) Kind() Kind { return KindPostCreated }

func (e PostCreated) Origin() Origin {
	return Origin{UserID: e.OriginUserID}
}
