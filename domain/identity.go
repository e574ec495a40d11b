// Package domain contains core concepts of the realtime layer: connection
// identities, broadcast rooms, and dispatch commands.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"fmt"
)

// Role is the closed set of roles a connection identity can carry.
// An unknown role string must fail ParseRole instead of silently
// matching zero rooms.
type Role string

const (
	RoleKetua           Role = "ketua"
	RoleAdmin           Role = "admin"
	RoleKoordinatorBlok Role = "koordinator_perblok"
	RoleWarga           Role = "warga"
)

// ParseRole maps a loosely-typed role string to the closed Role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleKetua, RoleAdmin, RoleKoordinatorBlok, RoleWarga:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Privileged reports whether the role may see admin-facing notifications
// (new payments, new complaints).
func (r Role) Privileged() bool {
	return r == RoleKetua || r == RoleAdmin
}

// HasBlock reports whether the role carries a block assignment.
// Only block coordinators and residents belong to a block room.
func (r Role) HasBlock() bool {
	return r == RoleKoordinatorBlok || r == RoleWarga
}

// Identity is the (user, role, block) triple attached to one live connection.
// It is provided by the external auth collaborator and never mutated here.
type Identity struct {
	UserID string
	Role   Role
	Block  string
}

// Rooms derives the broadcast rooms this identity belongs to.
// Membership is always recomputed from the identity, never stored.
func (i Identity) Rooms() []RoomKey {
	rooms := []RoomKey{RoleRoom(i.Role), UserRoom(i.UserID)}
	if i.Role.HasBlock() && i.Block != "" {
		rooms = append(rooms, BlockRoom(i.Block))
	}
	return rooms
}
