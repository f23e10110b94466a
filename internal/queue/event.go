// Package queue defines message payloads exchanged over the message
// broker and the background consumer that records them.
package queue

// Booking event types published to the booking.events queue.
const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// BookingEvent is published when a booking is created or cancelled. It
// carries enough information for downstream consumers to log or notify
// without querying the primary database.
type BookingEvent struct {
	EventID   string `json:"event_id"` // uuid, unique per message
	Type      string `json:"type"`     // EventBookingCreated or EventBookingCancelled
	BookingID uint64 `json:"booking_id"`
	UserID    uint64 `json:"user_id"`
	RoomID    uint64 `json:"room_id"`
	StartTime string `json:"start_time"` // RFC3339, UTC
	EndTime   string `json:"end_time"`   // RFC3339, UTC
	Status    string `json:"status"`
	EmittedAt string `json:"emitted_at"` // RFC3339, UTC
}
