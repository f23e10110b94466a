package service

// In-memory store fakes. They satisfy the store interfaces the
// services are built on, so every lifecycle rule can be exercised
// without a database. The booking fake guards its map with a mutex
// because the concurrency tests hit it from many goroutines.

import (
	"context"
	"sync"
	"time"

	"github.com/Abedishere/smartmeetingroom-435LProject/internal/auth"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/model"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/repository"
)

type fakeUserStore struct {
	byID map[uint64]*model.User
}

func (f *fakeUserStore) GetByID(_ context.Context, id uint64) (*model.User, error) {
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range f.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

type fakeRoomStore struct {
	byID map[uint64]*model.Room
}

func (f *fakeRoomStore) GetByID(_ context.Context, id uint64) (*model.Room, error) {
	if r, ok := f.byID[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, repository.ErrRoomNotFound
}

type fakeBookingStore struct {
	mu     sync.Mutex
	nextID uint64
	rows   map[uint64]*model.Booking

	usernames map[uint64]string
	roomNames map[uint64]string
}

func (f *fakeBookingStore) Create(_ context.Context, b *model.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now().UTC()
	cp := *b
	f.rows[b.ID] = &cp
	return nil
}

func (f *fakeBookingStore) GetByID(_ context.Context, id uint64) (*model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.rows[id]; ok {
		cp := *b
		return &cp, nil
	}
	return nil, repository.ErrBookingNotFound
}

func (f *fakeBookingStore) ActiveByRoom(_ context.Context, roomID uint64) ([]model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Booking{}
	for _, b := range f.rows {
		if b.RoomID == roomID && b.Active() {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) Update(_ context.Context, b *model.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[b.ID]
	if !ok {
		return repository.ErrBookingNotFound
	}
	row.RoomID, row.StartTime, row.EndTime = b.RoomID, b.StartTime, b.EndTime
	return nil
}

func (f *fakeBookingStore) SetStatus(_ context.Context, id uint64, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return repository.ErrBookingNotFound
	}
	row.Status = status
	return nil
}

func (f *fakeBookingStore) ListAll(_ context.Context) ([]repository.BookingDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []repository.BookingDetail{}
	for _, b := range f.rows {
		out = append(out, f.detail(b))
	}
	return out, nil
}

func (f *fakeBookingStore) ListByUser(_ context.Context, userID uint64) ([]repository.BookingDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []repository.BookingDetail{}
	for _, b := range f.rows {
		if b.UserID == userID {
			out = append(out, f.detail(b))
		}
	}
	return out, nil
}

func (f *fakeBookingStore) detail(b *model.Booking) repository.BookingDetail {
	return repository.BookingDetail{
		Booking:  *b,
		Username: f.usernames[b.UserID],
		RoomName: f.roomNames[b.RoomID],
	}
}

type fakeReviewStore struct {
	nextID uint64
	rows   map[uint64]*model.Review
}

func (f *fakeReviewStore) Create(_ context.Context, rev *model.Review) error {
	f.nextID++
	rev.ID = f.nextID
	rev.CreatedAt = time.Now().UTC()
	cp := *rev
	f.rows[rev.ID] = &cp
	return nil
}

func (f *fakeReviewStore) GetByID(_ context.Context, id uint64) (*model.Review, error) {
	if rev, ok := f.rows[id]; ok {
		cp := *rev
		return &cp, nil
	}
	return nil, repository.ErrReviewNotFound
}

func (f *fakeReviewStore) Update(_ context.Context, rev *model.Review) error {
	row, ok := f.rows[rev.ID]
	if !ok {
		return repository.ErrReviewNotFound
	}
	row.Rating, row.Comment = rev.Rating, rev.Comment
	return nil
}

func (f *fakeReviewStore) SetFlagged(_ context.Context, id uint64, flagged bool) error {
	row, ok := f.rows[id]
	if !ok {
		return repository.ErrReviewNotFound
	}
	row.Flagged = flagged
	return nil
}

func (f *fakeReviewStore) Delete(_ context.Context, id uint64) error {
	if _, ok := f.rows[id]; !ok {
		return repository.ErrReviewNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeReviewStore) ListByRoom(_ context.Context, roomID uint64, minRating int, flaggedOnly bool) ([]model.Review, error) {
	out := []model.Review{}
	for _, rev := range f.rows {
		if rev.RoomID != roomID {
			continue
		}
		if minRating > 0 && rev.Rating < minRating {
			continue
		}
		if flaggedOnly && !rev.Flagged {
			continue
		}
		out = append(out, *rev)
	}
	return out, nil
}

// fixture seeds the fakes with a standard cast of users and two rooms
// and builds both services on top of them.
type fixture struct {
	bookings *fakeBookingStore
	reviews  *fakeReviewStore

	bookingSvc *BookingService
	reviewSvc  *ReviewService
}

// Seeded user ids, fixed by newFixture.
const (
	aliceID   uint64 = 1
	bobID     uint64 = 2
	adminID   uint64 = 3
	fmID      uint64 = 4
	modID     uint64 = 5
	auditorID uint64 = 6
)

func newFixture() *fixture {
	users := &fakeUserStore{byID: map[uint64]*model.User{
		aliceID:   {ID: aliceID, Username: "alice", Role: model.RoleRegularUser},
		bobID:     {ID: bobID, Username: "bob", Role: model.RoleRegularUser},
		adminID:   {ID: adminID, Username: "root", Role: model.RoleAdmin},
		fmID:      {ID: fmID, Username: "facilities", Role: model.RoleFacilityManager},
		modID:     {ID: modID, Username: "mod", Role: model.RoleModerator},
		auditorID: {ID: auditorID, Username: "auditor", Role: model.RoleAuditorReadonly},
	}}
	rooms := &fakeRoomStore{byID: map[uint64]*model.Room{
		1: {ID: 1, Name: "Boardroom", Capacity: 12},
		2: {ID: 2, Name: "Huddle", Capacity: 4},
	}}
	bookings := &fakeBookingStore{
		rows:      map[uint64]*model.Booking{},
		usernames: map[uint64]string{},
		roomNames: map[uint64]string{},
	}
	for id, u := range users.byID {
		bookings.usernames[id] = u.Username
	}
	for id, r := range rooms.byID {
		bookings.roomNames[id] = r.Name
	}
	reviews := &fakeReviewStore{rows: map[uint64]*model.Review{}}

	return &fixture{
		bookings:   bookings,
		reviews:    reviews,
		bookingSvc: NewBookingService(users, rooms, bookings),
		reviewSvc:  NewReviewService(rooms, reviews),
	}
}

// Identities matching the seeded users.
func alice() auth.Identity {
	return auth.UserIdentity{ID: aliceID, Username: "alice", UserRole: model.RoleRegularUser}
}
func bob() auth.Identity {
	return auth.UserIdentity{ID: bobID, Username: "bob", UserRole: model.RoleRegularUser}
}
func admin() auth.Identity {
	return auth.UserIdentity{ID: adminID, Username: "root", UserRole: model.RoleAdmin}
}
func facilities() auth.Identity {
	return auth.UserIdentity{ID: fmID, Username: "facilities", UserRole: model.RoleFacilityManager}
}
func moderator() auth.Identity {
	return auth.UserIdentity{ID: modID, Username: "mod", UserRole: model.RoleModerator}
}
func auditor() auth.Identity {
	return auth.UserIdentity{ID: auditorID, Username: "auditor", UserRole: model.RoleAuditorReadonly}
}
func svc() auth.Identity { return auth.ServiceIdentity{Name: "internal"} }

// at builds a timestamp on a fixed day, keeping test windows readable.
func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }
