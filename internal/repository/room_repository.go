package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Abedishere/smartmeetingroom-435LProject/internal/model"
)

// RoomRepo provides access to the rooms table.
type RoomRepo struct{ DB *sql.DB }

func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{DB: db} }

// Create inserts a room and populates the generated id on the model.
// A taken room name maps to ErrDuplicate.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO rooms (name, capacity) VALUES (?,?)", room.Name, room.Capacity)
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
	room.ID = uint64(id)
	return nil
}

// GetByID fetches a room by id.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	var room model.Room
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, capacity, created_at FROM rooms WHERE id=? LIMIT 1", id).
		Scan(&room.ID, &room.Name, &room.Capacity, &room.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// List returns all rooms ordered by name.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, name, capacity, created_at FROM rooms ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Room{}
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity, &room.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

// Update replaces name and capacity of an existing room. It returns
// ErrRoomNotFound when no row was affected and ErrDuplicate when the
// new name is already taken.
func (r *RoomRepo) Update(ctx context.Context, room *model.Room) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE rooms SET name=?, capacity=? WHERE id=?", room.Name, room.Capacity, room.ID)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return ErrDuplicate
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// the row may exist with unchanged values; distinguish via lookup
		if _, gerr := r.GetByID(ctx, room.ID); gerr != nil {
			return gerr
		}
	}
	return nil
}

// Delete removes a room. Rooms referenced by bookings or reviews are
// protected by foreign keys; such deletes surface the driver error.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM rooms WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRoomNotFound
	}
	return nil
}
