package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Abedishere/smartmeetingroom-435LProject/internal/model"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/service"
)

// ReviewHandler exposes review CRUD and the flag/unflag moderation
// workflow. Policy, validation and sanitization decisions live in the
// review service.
type ReviewHandler struct {
	Reviews *service.ReviewService
}

func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	if reviews == nil {
		panic("nil service passed to NewReviewHandler")
	}
	return &ReviewHandler{Reviews: reviews}
}

type reviewReq struct {
	RoomID  uint64 `json:"room_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Create handles POST /v1/reviews.
func (h *ReviewHandler) Create(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id is required"})
	}
	rev, err := h.Reviews.Create(c.Request().Context(), id, req.RoomID, req.Rating, req.Comment)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, rev)
}

// Update handles PUT /v1/reviews/:id. Rating and comment are replaced
// in full.
func (h *ReviewHandler) Update(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	reviewID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	rev, err := h.Reviews.Update(c.Request().Context(), id, reviewID, req.Rating, req.Comment)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rev)
}

// Delete handles DELETE /v1/reviews/:id.
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	reviewID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Reviews.Delete(c.Request().Context(), id, reviewID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": fmt.Sprintf("Review %d deleted successfully", reviewID)})
}

// ListForRoom handles GET /v1/reviews/room/:room_id with optional
// min_rating and flagged_only query filters.
func (h *ReviewHandler) ListForRoom(c echo.Context) error {
	if _, err := identity(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	roomID, err := pathID(c, "room_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	minRating := 0
	if s := c.QueryParam("min_rating"); s != "" {
		minRating, err = strconv.Atoi(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid min_rating"})
		}
	}
	flaggedOnly := c.QueryParam("flagged_only") == "true"
	items, err := h.Reviews.ListForRoom(c.Request().Context(), roomID, minRating, flaggedOnly)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Flag handles POST /v1/reviews/:id/flag.
func (h *ReviewHandler) Flag(c echo.Context) error {
	return h.setFlag(c, true)
}

// Unflag handles POST /v1/reviews/:id/unflag.
func (h *ReviewHandler) Unflag(c echo.Context) error {
	return h.setFlag(c, false)
}

func (h *ReviewHandler) setFlag(c echo.Context, flagged bool) error {
	id, err := identity(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	reviewID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var rev *model.Review
	if flagged {
		rev, err = h.Reviews.Flag(c.Request().Context(), id, reviewID)
	} else {
		rev, err = h.Reviews.Unflag(c.Request().Context(), id, reviewID)
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rev)
}
