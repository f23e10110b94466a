// Package service implements the booking lifecycle and review
// moderation logic on top of injected stores. Handlers translate the
// sentinel errors below (and the repository NotFound sentinels) into
// HTTP status codes; anything that does not match one of them is an
// internal failure and must not be masked as a client error.
package service

import "errors"

// ErrForbidden is returned when the caller is authenticated but lacks
// the role or ownership required for an operation, including any
// mutating call by the read-only auditor role.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when a candidate booking window overlaps an
// existing active booking for the same room.
var ErrConflict = errors.New("conflict")

// ErrInvalidInput is returned for malformed requests: an inverted or
// empty time window, a missing user reference, an out-of-range rating
// or an empty comment. Wrapped with detail via fmt.Errorf("%w: ...").
var ErrInvalidInput = errors.New("invalid input")
