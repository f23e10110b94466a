package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Abedishere/smartmeetingroom-435LProject/internal/auth"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/model"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/repository"
)

// UserStore is the read-only view of users the services need.
type UserStore interface {
	GetByID(ctx context.Context, id uint64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// RoomStore is the read-only view of rooms the services need.
type RoomStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Room, error)
}

// BookingStore persists bookings. *repository.BookingRepo implements
// it; tests substitute an in-memory fake.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id uint64) (*model.Booking, error)
	ActiveByRoom(ctx context.Context, roomID uint64) ([]model.Booking, error)
	Update(ctx context.Context, b *model.Booking) error
	SetStatus(ctx context.Context, id uint64, status string) error
	ListAll(ctx context.Context) ([]repository.BookingDetail, error)
	ListByUser(ctx context.Context, userID uint64) ([]repository.BookingDetail, error)
}

// BookingService orchestrates the booking lifecycle: conflict-checked
// creation and updates, idempotent cancellation and the gated read
// queries. Stores are injected at construction so the logic can be
// exercised without a database.
type BookingService struct {
	users    UserStore
	rooms    RoomStore
	bookings BookingStore
	locks    roomLocks
}

// NewBookingService constructs a BookingService and panics if any
// dependency is nil.
func NewBookingService(users UserStore, rooms RoomStore, bookings BookingStore) *BookingService {
	if users == nil || rooms == nil || bookings == nil {
		panic("nil store passed to NewBookingService")
	}
	return &BookingService{users: users, rooms: rooms, bookings: bookings}
}

// CreateBookingInput carries the fields of a booking creation request.
// Exactly one of UserID and Username identifies the booking's owner.
type CreateBookingInput struct {
	UserID    *uint64
	Username  string
	RoomID    uint64
	StartTime time.Time
	EndTime   time.Time
}

// UpdateBookingInput carries the optional fields of a booking update.
// Nil fields keep the booking's current value.
type UpdateBookingInput struct {
	StartTime *time.Time
	EndTime   *time.Time
	RoomID    *uint64
}

// Create validates, conflict-checks and persists a new confirmed
// booking. The room's lock is held from the conflict check until the
// insert commits.
func (s *BookingService) Create(ctx context.Context, id auth.Identity, in CreateBookingInput) (*model.Booking, error) {
	if !auth.CanCreateBooking(id) {
		return nil, ErrForbidden
	}
	if !in.EndTime.After(in.StartTime) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", ErrInvalidInput)
	}
	if (in.UserID == nil) == (in.Username == "") {
		return nil, fmt.Errorf("%w: exactly one of user_id and username is required", ErrInvalidInput)
	}

	var (
		user *model.User
		err  error
	)
	if in.UserID != nil {
		user, err = s.users.GetByID(ctx, *in.UserID)
	} else {
		user, err = s.users.GetByUsername(ctx, in.Username)
	}
	if err != nil {
		return nil, err
	}
	if _, err := s.rooms.GetByID(ctx, in.RoomID); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(in.RoomID)
	defer unlock()

	conflict, err := s.hasConflict(ctx, in.RoomID, in.StartTime, in.EndTime, 0)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrConflict
	}

	b := &model.Booking{
		UserID:    user.ID,
		RoomID:    in.RoomID,
		StartTime: in.StartTime.UTC(),
		EndTime:   in.EndTime.UTC(),
		Status:    model.BookingConfirmed,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Update overlays the supplied fields on the existing booking,
// re-validates the window against other active bookings (excluding the
// booking itself) and persists the result. Status is untouched.
func (s *BookingService) Update(ctx context.Context, id auth.Identity, bookingID uint64, in UpdateBookingInput) (*model.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !auth.CanManageBooking(id, b.UserID) {
		return nil, ErrForbidden
	}

	newStart, newEnd, newRoom := b.StartTime, b.EndTime, b.RoomID
	if in.StartTime != nil {
		newStart = in.StartTime.UTC()
	}
	if in.EndTime != nil {
		newEnd = in.EndTime.UTC()
	}
	if in.RoomID != nil {
		newRoom = *in.RoomID
	}
	if !newEnd.After(newStart) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", ErrInvalidInput)
	}
	if _, err := s.rooms.GetByID(ctx, newRoom); err != nil {
		return nil, err
	}

	unlock := s.locks.lock(newRoom)
	defer unlock()

	conflict, err := s.hasConflict(ctx, newRoom, newStart, newEnd, b.ID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrConflict
	}

	b.StartTime, b.EndTime, b.RoomID = newStart, newEnd, newRoom
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Cancel soft-deletes a booking by setting its status to cancelled and
// returns the booking in its new state. Cancelling an already-cancelled
// booking succeeds silently.
func (s *BookingService) Cancel(ctx context.Context, id auth.Identity, bookingID uint64) (*model.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !auth.CanManageBooking(id, b.UserID) {
		return nil, ErrForbidden
	}
	if err := s.bookings.SetStatus(ctx, b.ID, model.BookingCancelled); err != nil {
		return nil, err
	}
	b.Status = model.BookingCancelled
	return b, nil
}

// CheckAvailability reports whether a room is free for the given
// window. It is a pure read open to any authenticated caller.
func (s *BookingService) CheckAvailability(ctx context.Context, roomID uint64, start, end time.Time) (bool, error) {
	if !end.After(start) {
		return false, fmt.Errorf("%w: end_time must be after start_time", ErrInvalidInput)
	}
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		return false, err
	}
	conflict, err := s.hasConflict(ctx, roomID, start, end, 0)
	if err != nil {
		return false, err
	}
	return !conflict, nil
}

// List returns every booking. Restricted to admins, facility managers
// and read-only auditors.
func (s *BookingService) List(ctx context.Context, id auth.Identity) ([]repository.BookingDetail, error) {
	if !auth.CanListBookings(id) {
		return nil, ErrForbidden
	}
	return s.bookings.ListAll(ctx)
}

// Get returns one booking by id under the same gate as List.
func (s *BookingService) Get(ctx context.Context, id auth.Identity, bookingID uint64) (*model.Booking, error) {
	if !auth.CanListBookings(id) {
		return nil, ErrForbidden
	}
	return s.bookings.GetByID(ctx, bookingID)
}

// History returns the booking history of the named user. Users may
// read their own history; privileged roles may read anyone's.
func (s *BookingService) History(ctx context.Context, id auth.Identity, username string) ([]repository.BookingDetail, error) {
	if !auth.CanViewHistory(id, username) {
		return nil, ErrForbidden
	}
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.bookings.ListByUser(ctx, user.ID)
}

// hasConflict scans the room's active bookings for overlap with the
// candidate window. excludeID skips one booking, used when an update
// must not collide with the booking's own prior window. Callers that
// mutate must hold the room's lock across this check and the write.
func (s *BookingService) hasConflict(ctx context.Context, roomID uint64, start, end time.Time, excludeID uint64) (bool, error) {
	existing, err := s.bookings.ActiveByRoom(ctx, roomID)
	if err != nil {
		return false, err
	}
	for i := range existing {
		if existing[i].ID == excludeID {
			continue
		}
		if overlaps(start, end, existing[i].StartTime, existing[i].EndTime) {
			return true, nil
		}
	}
	return false, nil
}
