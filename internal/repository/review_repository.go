package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Abedishere/smartmeetingroom-435LProject/internal/model"
)

// ReviewRepo provides access to the reviews table. Unlike bookings,
// reviews are hard-deleted.
type ReviewRepo struct{ DB *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{DB: db} }

const reviewColumns = "id, room_id, user_id, rating, comment, flagged, created_at"

// Create inserts a review and populates the generated id and creation
// timestamp.
func (r *ReviewRepo) Create(ctx context.Context, rev *model.Review) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO reviews (room_id, user_id, rating, comment, flagged) VALUES (?,?,?,?,?)",
		rev.RoomID, rev.UserID, rev.Rating, rev.Comment, rev.Flagged)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rev.ID = uint64(id)
	return r.DB.QueryRowContext(ctx, "SELECT created_at FROM reviews WHERE id=?", rev.ID).
		Scan(&rev.CreatedAt)
}

// GetByID fetches a review by id.
func (r *ReviewRepo) GetByID(ctx context.Context, id uint64) (*model.Review, error) {
	var rev model.Review
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+reviewColumns+" FROM reviews WHERE id=? LIMIT 1", id).
		Scan(&rev.ID, &rev.RoomID, &rev.UserID, &rev.Rating, &rev.Comment, &rev.Flagged, &rev.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

// Update replaces rating and comment of an existing review.
func (r *ReviewRepo) Update(ctx context.Context, rev *model.Review) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE reviews SET rating=?, comment=? WHERE id=?", rev.Rating, rev.Comment, rev.ID)
	return err
}

// SetFlagged updates the moderation flag. Writing an unchanged value
// succeeds, keeping flag and unflag idempotent.
func (r *ReviewRepo) SetFlagged(ctx context.Context, id uint64, flagged bool) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE reviews SET flagged=? WHERE id=?", flagged, id)
	return err
}

// Delete removes a review permanently.
func (r *ReviewRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM reviews WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// ListByRoom returns reviews for a room, newest first. minRating (when
// > 0) keeps only reviews rated at or above it; flaggedOnly keeps only
// flagged reviews. Both filters combine with AND.
func (r *ReviewRepo) ListByRoom(ctx context.Context, roomID uint64, minRating int, flaggedOnly bool) ([]model.Review, error) {
	q := "SELECT " + reviewColumns + " FROM reviews WHERE room_id=?"
	args := []interface{}{roomID}
	if minRating > 0 {
		q += " AND rating >= ?"
		args = append(args, minRating)
	}
	if flaggedOnly {
		q += " AND flagged = TRUE"
	}
	q += " ORDER BY created_at DESC"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Review{}
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(&rev.ID, &rev.RoomID, &rev.UserID, &rev.Rating, &rev.Comment, &rev.Flagged, &rev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}
