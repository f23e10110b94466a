package model

import "time"

// Rating bounds for reviews, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user's rating of a room. Comments are sanitized before
// they reach the store, so the Comment field always holds plain text.
// Flagged marks a review for moderation; moderators and admins may
// clear the flag again.
//
// Fields:
//  ID        – primary key identifier.
//  RoomID    – room the review is about.
//  UserID    – authoring user.
//  Rating    – integer in [MinRating, MaxRating].
//  Comment   – sanitized plain-text comment, non-empty.
//  Flagged   – moderation flag.
//  CreatedAt – timestamp of creation.
type Review struct {
	ID        uint64    `json:"id"`         // reviews.id
	RoomID    uint64    `json:"room_id"`    // reviews.room_id
	UserID    uint64    `json:"user_id"`    // reviews.user_id
	Rating    int       `json:"rating"`     // reviews.rating
	Comment   string    `json:"comment"`    // reviews.comment
	Flagged   bool      `json:"flagged"`    // reviews.flagged
	CreatedAt time.Time `json:"created_at"` // reviews.created_at
}
