package model

import "time"

// Room represents a row in the `rooms` table. Rooms are managed by
// facility managers and admins; bookings and reviews reference them.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – unique room name.
//  Capacity  – seats available in the room (0 when unknown).
//  CreatedAt – timestamp of creation.
type Room struct {
	ID        uint64    `json:"id"`         // rooms.id
	Name      string    `json:"name"`       // rooms.name
	Capacity  uint32    `json:"capacity"`   // rooms.capacity
	CreatedAt time.Time `json:"created_at"` // rooms.created_at
}
