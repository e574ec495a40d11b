package domain

import "fmt"

// RoomKey names a broadcast group derived from a connection identity.
// Rooms are never created or destroyed; they exist whenever at least one
// registered connection derives them.
type RoomKey string

func RoleRoom(r Role) RoomKey {
	return RoomKey(fmt.Sprintf("role:%s", r))
}

func UserRoom(userID string) RoomKey {
	return RoomKey(fmt.Sprintf("user:%s", userID))
}

func BlockRoom(block string) RoomKey {
	return RoomKey(fmt.Sprintf("block:%s", block))
}
