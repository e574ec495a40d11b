package event

import (
	"fmt"

	"rukun-live/domain"
)

// RoomsFor computes the notify rooms for a domain event. The mapping is a
// pure function of the event kind and origin: it is deterministic and does
// not depend on who is connected. An event of unknown type contributes no
// rooms and never raises.
func RoomsFor(e DomainEvent) []domain.RoomKey {
	origin := e.Origin()
	switch e.(type) {
	case PaymentCreated, PaymentStatusChanged:
		rooms := []domain.RoomKey{
			domain.RoleRoom(domain.RoleKetua),
			domain.RoleRoom(domain.RoleAdmin),
			domain.RoleRoom(domain.RoleKoordinatorBlok),
			domain.UserRoom(origin.UserID),
		}
		if origin.Block != "" {
			rooms = append(rooms, domain.BlockRoom(origin.Block))
		}
		return rooms
	case ComplaintCreated, ComplaintCommented:
		return []domain.RoomKey{
			domain.RoleRoom(domain.RoleKetua),
			domain.RoleRoom(domain.RoleAdmin),
			domain.UserRoom(origin.UserID),
		}
	case PostCreated:
		return []domain.RoomKey{domain.RoleRoom(domain.RoleKetua)}
	default:
		return nil
	}
}

// Fanout couples one wire frame with the audience that must receive it.
// Everyone marks the broad data-changed delivery that ignores rooms.
type Fanout struct {
	Rooms    []domain.RoomKey
	Everyone bool
	Frame    Frame
}

// FanoutsFor translates a domain event into its wire deliveries.
// Most events produce a single targeted fan-out; post-created produces two
// independent ones: a narrow notify for the chairman and a broad data-changed
// broadcast so every connected resident refreshes the feed.
func FanoutsFor(e DomainEvent) ([]Fanout, error) {
	switch evt := e.(type) {
	case PaymentCreated:
		frame, err := NewFrame(WirePaymentNotification, PaymentPayload{
			Nama:            evt.Nama,
			Blok:            evt.Blok,
			JenisPembayaran: evt.JenisPembayaran,
		})
		if err != nil {
			return nil, err
		}
		return []Fanout{{Rooms: RoomsFor(e), Frame: frame}}, nil
	case PaymentStatusChanged:
		frame, err := NewFrame(WirePaymentStatusUpdate, PaymentPayload{
			Nama:            evt.Nama,
			Blok:            evt.Blok,
			JenisPembayaran: evt.JenisPembayaran,
			Status:          string(evt.Status),
		})
		if err != nil {
			return nil, err
		}
		return []Fanout{{Rooms: RoomsFor(e), Frame: frame}}, nil
	case ComplaintCreated:
		frame, err := NewFrame(WireComplaintNotification, ComplaintPayload{
			Nama:  evt.Nama,
			Blok:  evt.Blok,
			Judul: evt.Judul,
		})
		if err != nil {
			return nil, err
		}
		return []Fanout{{Rooms: RoomsFor(e), Frame: frame}}, nil
	case ComplaintCommented:
		frame, err := NewFrame(WireComplaintNotification, ComplaintPayload{
			Nama:     evt.Nama,
			Blok:     evt.Blok,
			Judul:    evt.Judul,
			Komentar: evt.Komentar,
		})
		if err != nil {
			return nil, err
		}
		return []Fanout{{Rooms: RoomsFor(e), Frame: frame}}, nil
	case PostCreated:
		notify, err := NewFrame(WireNotification, NotificationPayload{
			Title:   "Postingan baru",
			Message: fmt.Sprintf("%s: %s", evt.Penulis, evt.Judul),
		})
		if err != nil {
			return nil, err
		}
		broad, err := NewFrame(WirePostUpdate, PostPayload{
			Penulis: evt.Penulis,
			Judul:   evt.Judul,
		})
		if err != nil {
			return nil, err
		}
		return []Fanout{
			{Rooms: RoomsFor(e), Frame: notify},
			{Everyone: true, Frame: broad},
		}, nil
	default:
		return nil, nil
	}
}
