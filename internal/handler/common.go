package handler // handler defines http handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Abedishere/smartmeetingroom-435LProject/internal/auth"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/middleware"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/repository"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/service"
)

// identity extracts the authenticated caller from context. A missing
// identity means the route was registered without the Authenticate
// middleware, which is a wiring bug surfaced as 401.
func identity(c echo.Context) (auth.Identity, error) {
	id, ok := middleware.Identity(c)
	if !ok {
		return nil, errors.New("no identity in context")
	}
	return id, nil
}

// pathID parses the named path parameter as a positive integer id.
func pathID(c echo.Context, name string) (uint64, error) {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || n == 0 {
		return 0, errors.New("invalid " + name)
	}
	return n, nil
}

// queryID parses the named query parameter as a positive integer id.
func queryID(c echo.Context, name string) (uint64, error) {
	n, err := strconv.ParseUint(c.QueryParam(name), 10, 64)
	if err != nil || n == 0 {
		return 0, errors.New("invalid " + name)
	}
	return n, nil
}

// writeError maps a service or repository error onto the HTTP error
// taxonomy. Errors outside the taxonomy become an opaque 500 so
// internal causes are never presented as client mistakes.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": "room already booked for that time window"})
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrRoomNotFound),
		errors.Is(err, repository.ErrBookingNotFound),
		errors.Is(err, repository.ErrReviewNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrDuplicate):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
