package service

import (
	"context"
	"fmt"

	"github.com/Abedishere/smartmeetingroom-435LProject/internal/auth"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/model"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/sanitize"
)

// ReviewStore persists reviews. *repository.ReviewRepo implements it.
type ReviewStore interface {
	Create(ctx context.Context, rev *model.Review) error
	GetByID(ctx context.Context, id uint64) (*model.Review, error)
	Update(ctx context.Context, rev *model.Review) error
	SetFlagged(ctx context.Context, id uint64, flagged bool) error
	Delete(ctx context.Context, id uint64) error
	ListByRoom(ctx context.Context, roomID uint64, minRating int, flaggedOnly bool) ([]model.Review, error)
}

// ReviewService orchestrates review creation, edits, deletion and the
// flag/unflag moderation workflow. Comments are sanitized before any
// write; nothing unsanitized ever reaches the store.
type ReviewService struct {
	rooms   RoomStore
	reviews ReviewStore
}

// NewReviewService constructs a ReviewService and panics if any
// dependency is nil.
func NewReviewService(rooms RoomStore, reviews ReviewStore) *ReviewService {
	if rooms == nil || reviews == nil {
		panic("nil store passed to NewReviewService")
	}
	return &ReviewService{rooms: rooms, reviews: reviews}
}

// validateReviewFields checks the rating range and sanitizes the
// comment, returning the cleaned text.
func validateReviewFields(rating int, comment string) (string, error) {
	if rating < model.MinRating || rating > model.MaxRating {
		return "", fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, model.MinRating, model.MaxRating)
	}
	clean := sanitize.Comment(comment)
	if clean == "" {
		return "", fmt.Errorf("%w: comment must not be empty", ErrInvalidInput)
	}
	return clean, nil
}

// Create persists a new unflagged review authored by the caller.
func (s *ReviewService) Create(ctx context.Context, id auth.Identity, roomID uint64, rating int, comment string) (*model.Review, error) {
	if !auth.CanCreateReview(id) {
		return nil, ErrForbidden
	}
	author, ok := id.(auth.UserIdentity)
	if !ok {
		// service identities pass no role gate above, but keep the
		// authorship requirement explicit
		return nil, ErrForbidden
	}
	clean, err := validateReviewFields(rating, comment)
	if err != nil {
		return nil, err
	}
	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		return nil, err
	}
	rev := &model.Review{
		RoomID:  roomID,
		UserID:  author.ID,
		Rating:  rating,
		Comment: clean,
		Flagged: false,
	}
	if err := s.reviews.Create(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

// Update fully replaces rating and comment of an existing review.
// Only the author or an admin may edit.
func (s *ReviewService) Update(ctx context.Context, id auth.Identity, reviewID uint64, rating int, comment string) (*model.Review, error) {
	rev, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if !auth.CanUpdateReview(id, rev.UserID) {
		return nil, ErrForbidden
	}
	clean, err := validateReviewFields(rating, comment)
	if err != nil {
		return nil, err
	}
	rev.Rating = rating
	rev.Comment = clean
	if err := s.reviews.Update(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

// Delete permanently removes a review. Allowed for the author,
// moderators and admins.
func (s *ReviewService) Delete(ctx context.Context, id auth.Identity, reviewID uint64) error {
	rev, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if !auth.CanDeleteReview(id, rev.UserID) {
		return ErrForbidden
	}
	return s.reviews.Delete(ctx, rev.ID)
}

// ListForRoom returns a room's reviews with optional AND-combined
// filters. minRating 0 means no lower bound.
func (s *ReviewService) ListForRoom(ctx context.Context, roomID uint64, minRating int, flaggedOnly bool) ([]model.Review, error) {
	if minRating != 0 && (minRating < model.MinRating || minRating > model.MaxRating) {
		return nil, fmt.Errorf("%w: min_rating must be between %d and %d", ErrInvalidInput, model.MinRating, model.MaxRating)
	}
	return s.reviews.ListByRoom(ctx, roomID, minRating, flaggedOnly)
}

// Flag marks a review for moderation. The write is unconditional, so
// flagging twice is harmless.
func (s *ReviewService) Flag(ctx context.Context, id auth.Identity, reviewID uint64) (*model.Review, error) {
	rev, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if !auth.CanFlagReview(id) {
		return nil, ErrForbidden
	}
	if err := s.reviews.SetFlagged(ctx, rev.ID, true); err != nil {
		return nil, err
	}
	rev.Flagged = true
	return rev, nil
}

// Unflag clears the moderation flag. Moderators and admins only.
func (s *ReviewService) Unflag(ctx context.Context, id auth.Identity, reviewID uint64) (*model.Review, error) {
	rev, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if !auth.CanUnflagReview(id) {
		return nil, ErrForbidden
	}
	if err := s.reviews.SetFlagged(ctx, rev.ID, false); err != nil {
		return nil, err
	}
	rev.Flagged = false
	return rev, nil
}
