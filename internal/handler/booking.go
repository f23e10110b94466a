package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Abedishere/smartmeetingroom-435LProject/internal/model"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/queue"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/service"
)

// BookingHandler exposes the booking lifecycle over HTTP. All policy
// and conflict decisions live in the booking service; the handler only
// binds requests, extracts the caller identity and maps errors.
type BookingHandler struct {
	Bookings *service.BookingService
}

func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	if bookings == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings}
}

type createBookingReq struct {
	UserID    *uint64   `json:"user_id"`
	Username  string    `json:"username"`
	RoomID    uint64    `json:"room_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type updateBookingReq struct {
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	RoomID    *uint64    `json:"room_id"`
}

// Create handles POST /v1/bookings.
func (h *BookingHandler) Create(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id is required"})
	}
	b, err := h.Bookings.Create(c.Request().Context(), id, service.CreateBookingInput{
		UserID:    req.UserID,
		Username:  req.Username,
		RoomID:    req.RoomID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return writeError(c, err)
	}
	publishBookingEvent(queue.EventBookingCreated, b)
	return c.JSON(http.StatusCreated, b)
}

// Update handles PUT /v1/bookings/:id. Omitted fields keep their
// current values.
func (h *BookingHandler) Update(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req updateBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	b, err := h.Bookings.Update(c.Request().Context(), id, bookingID, service.UpdateBookingInput{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		RoomID:    req.RoomID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// Cancel handles DELETE /v1/bookings/:id. The booking row stays with
// status cancelled.
func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	b, err := h.Bookings.Cancel(c.Request().Context(), id, bookingID)
	if err != nil {
		return writeError(c, err)
	}
	publishBookingEvent(queue.EventBookingCancelled, b)
	return c.JSON(http.StatusOK, echo.Map{"message": fmt.Sprintf("Booking %d cancelled successfully", bookingID)})
}

// CheckAvailability handles GET /v1/bookings/check-availability with
// room_id, start_time and end_time query parameters (RFC3339).
func (h *BookingHandler) CheckAvailability(c echo.Context) error {
	if _, err := identity(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	roomID, err := queryID(c, "room_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	start, err := time.Parse(time.RFC3339, c.QueryParam("start_time"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start_time"})
	}
	end, err := time.Parse(time.RFC3339, c.QueryParam("end_time"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end_time"})
	}
	available, err := h.Bookings.CheckAvailability(c.Request().Context(), roomID, start, end)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"available": available})
}

// List handles GET /v1/bookings (privileged roles only).
func (h *BookingHandler) List(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	items, err := h.Bookings.List(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/bookings/:id (privileged roles only).
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	b, err := h.Bookings.Get(c.Request().Context(), id, bookingID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// History handles GET /v1/bookings/user/:username (self or privileged).
func (h *BookingHandler) History(c echo.Context) error {
	id, err := identity(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	username := c.Param("username")
	if username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid username"})
	}
	items, err := h.Bookings.History(c.Request().Context(), id, username)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// publishBookingEvent emits a booking event to the broker. Publish
// failures are logged inside the queue package and deliberately
// ignored: events are best-effort and never fail the request.
func publishBookingEvent(eventType string, b *model.Booking) {
	ev := queue.NewBookingEvent(eventType, b)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	go func() {
		defer cancel()
		_ = queue.PublishBookingEvent(ctx, ev)
	}()
}
