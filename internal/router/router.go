package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/Abedishere/smartmeetingroom-435LProject/internal/config"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/handler"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/middleware"
)

// Handlers collects the handler groups wired up in main.
type Handlers struct {
	Auth     *handler.AuthHandler
	Rooms    *handler.RoomHandler
	Bookings *handler.BookingHandler
	Reviews  *handler.ReviewHandler
}

// Register wires all routes. /healthz and /v1/auth/* are public;
// everything else under /v1 requires an authenticated identity (JWT
// bearer token or the service account key). Rate limiting applies to
// the whole API when a Redis client is available.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	e.GET("/healthz", handler.Health)

	pub := e.Group("/v1/auth")
	pub.POST("/register", h.Auth.Register)
	pub.POST("/login", h.Auth.Login)

	v1 := e.Group("/v1")
	v1.Use(middleware.Authenticate(cfg.JWTSecret, cfg.ServiceAPIKey))

	v1.GET("/rooms", h.Rooms.List)
	v1.GET("/rooms/:id", h.Rooms.Get)
	v1.POST("/rooms", h.Rooms.Create)
	v1.PUT("/rooms/:id", h.Rooms.Update)
	v1.DELETE("/rooms/:id", h.Rooms.Delete)

	// check-availability is registered before /bookings/:id so the
	// literal segment wins over the id parameter
	v1.GET("/bookings/check-availability", h.Bookings.CheckAvailability)
	v1.GET("/bookings", h.Bookings.List)
	v1.GET("/bookings/:id", h.Bookings.Get)
	v1.GET("/bookings/user/:username", h.Bookings.History)
	v1.POST("/bookings", h.Bookings.Create)
	v1.PUT("/bookings/:id", h.Bookings.Update)
	v1.DELETE("/bookings/:id", h.Bookings.Cancel)

	v1.POST("/reviews", h.Reviews.Create)
	v1.PUT("/reviews/:id", h.Reviews.Update)
	v1.DELETE("/reviews/:id", h.Reviews.Delete)
	v1.GET("/reviews/room/:room_id", h.Reviews.ListForRoom)
	v1.POST("/reviews/:id/flag", h.Reviews.Flag)
	v1.POST("/reviews/:id/unflag", h.Reviews.Unflag)
}
