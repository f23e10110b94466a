// Package repository implements the MySQL persistence layer. The
// sentinel errors below let the service and handler layers distinguish
// failure kinds with errors.Is instead of inspecting driver errors.
package repository

import "errors"

// ErrUserNotFound is returned when a referenced user does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrRoomNotFound is returned when a referenced room does not exist.
var ErrRoomNotFound = errors.New("room not found")

// ErrBookingNotFound is returned when a referenced booking does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// ErrReviewNotFound is returned when a referenced review does not exist.
var ErrReviewNotFound = errors.New("review not found")

// ErrDuplicate is returned when an insert or update violates a unique
// constraint, such as a taken username, a taken room name, or an exact
// duplicate (room, start, end) booking window.
var ErrDuplicate = errors.New("duplicate entry")
