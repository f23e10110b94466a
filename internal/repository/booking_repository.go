package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Abedishere/smartmeetingroom-435LProject/internal/model"
)

// BookingRepo provides access to the bookings table. All timestamps
// are stored and returned in UTC. Rows are never hard-deleted; a
// cancellation only flips the status column.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// BookingDetail is a booking joined with its owning username and room
// name, the shape returned by the list and history endpoints.
type BookingDetail struct {
	model.Booking
	Username string `json:"username"`
	RoomName string `json:"room_name"`
}

const bookingColumns = "id, user_id, room_id, start_time, end_time, status, created_at"

// Create inserts a confirmed booking and populates the generated id
// and creation timestamp. An exact duplicate (room, start, end) window
// violates the table's unique constraint and maps to ErrDuplicate.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO bookings (user_id, room_id, start_time, end_time, status) VALUES (?,?,?,?,?)",
		b.UserID, b.RoomID, b.StartTime.UTC(), b.EndTime.UTC(), b.Status)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrDuplicate
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	const sel = "SELECT created_at FROM bookings WHERE id=?"
	return r.DB.QueryRowContext(ctx, sel, b.ID).Scan(&b.CreatedAt)
}

// GetByID fetches a booking by id.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	var b model.Booking
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id=? LIMIT 1", id).
		Scan(&b.ID, &b.UserID, &b.RoomID, &b.StartTime, &b.EndTime, &b.Status, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ActiveByRoom returns all non-cancelled bookings for a room. The
// booking service scans these for overlap with a candidate window.
func (r *BookingRepo) ActiveByRoom(ctx context.Context, roomID uint64) ([]model.Booking, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE room_id=? AND status <> ?",
		roomID, model.BookingCancelled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

// Update persists the mutable fields of a booking: room and window.
// Status is deliberately not touched here; SetStatus owns that.
func (r *BookingRepo) Update(ctx context.Context, b *model.Booking) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE bookings SET room_id=?, start_time=?, end_time=? WHERE id=?",
		b.RoomID, b.StartTime.UTC(), b.EndTime.UTC(), b.ID)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrDuplicate
		}
		return err
	}
	if _, err := res.RowsAffected(); err != nil {
		return err
	}
	return nil
}

// SetStatus updates only the status column. Setting an already-set
// value succeeds silently, which makes cancellation idempotent.
func (r *BookingRepo) SetStatus(ctx context.Context, id uint64, status string) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE bookings SET status=? WHERE id=?", status, id)
	return err
}

// ListAll returns every booking joined with username and room name,
// newest first.
func (r *BookingRepo) ListAll(ctx context.Context) ([]BookingDetail, error) {
	const q = `SELECT b.id, b.user_id, b.room_id, b.start_time, b.end_time, b.status, b.created_at,
	                  u.username, rm.name
	           FROM bookings b
	           JOIN users u ON u.id = b.user_id
	           JOIN rooms rm ON rm.id = b.room_id
	           ORDER BY b.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookingDetails(rows)
}

// ListByUser returns the booking history of one user joined with
// username and room name, newest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	const q = `SELECT b.id, b.user_id, b.room_id, b.start_time, b.end_time, b.status, b.created_at,
	                  u.username, rm.name
	           FROM bookings b
	           JOIN users u ON u.id = b.user_id
	           JOIN rooms rm ON rm.id = b.room_id
	           WHERE b.user_id = ?
	           ORDER BY b.created_at DESC`
	rows, err := r.DB.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookingDetails(rows)
}

func scanBookings(rows *sql.Rows) ([]model.Booking, error) {
	out := []model.Booking{}
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.RoomID, &b.StartTime, &b.EndTime, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanBookingDetails(rows *sql.Rows) ([]BookingDetail, error) {
	out := []BookingDetail{}
	for rows.Next() {
		var d BookingDetail
		if err := rows.Scan(&d.ID, &d.UserID, &d.RoomID, &d.StartTime, &d.EndTime, &d.Status, &d.CreatedAt,
			&d.Username, &d.RoomName); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
