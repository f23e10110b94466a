package model

import "time"

// Booking status values. A booking is created confirmed and is never
// hard-deleted: cancellation flips the status and the row stays for
// history queries. Cancelled is terminal.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking records a reservation of a room for a half-open time window
// [StartTime, EndTime). Among non-cancelled bookings of the same room
// no two windows may overlap; that invariant is enforced by the
// booking service at write time, not by the table.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – user the booking belongs to.
//  RoomID    – room being reserved.
//  StartTime – window start (inclusive), UTC.
//  EndTime   – window end (exclusive), UTC.
//  Status    – BookingConfirmed or BookingCancelled.
//  CreatedAt – timestamp of creation.
type Booking struct {
	ID        uint64    `json:"id"`         // bookings.id
	UserID    uint64    `json:"user_id"`    // bookings.user_id
	RoomID    uint64    `json:"room_id"`    // bookings.room_id
	StartTime time.Time `json:"start_time"` // bookings.start_time
	EndTime   time.Time `json:"end_time"`   // bookings.end_time
	Status    string    `json:"status"`     // bookings.status
	CreatedAt time.Time `json:"created_at"` // bookings.created_at
}

// Active reports whether the booking still occupies its time window.
func (b *Booking) Active() bool { return b.Status != BookingCancelled }
