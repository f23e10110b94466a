package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/Abedishere/smartmeetingroom-435LProject/internal/config"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/database"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/handler"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/queue"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/repository"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/router"
	"github.com/Abedishere/smartmeetingroom-435LProject/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	userRepo := repository.NewUserRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	reviewRepo := repository.NewReviewRepo(db)

	bookingSvc := service.NewBookingService(userRepo, roomRepo, bookingRepo)
	reviewSvc := service.NewReviewService(roomRepo, reviewRepo)

	h := router.Handlers{
		Auth:     handler.NewAuthHandler(cfg, userRepo),
		Rooms:    handler.NewRoomHandler(roomRepo),
		Bookings: handler.NewBookingHandler(bookingSvc),
		Reviews:  handler.NewReviewHandler(reviewSvc),
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting disabled")
	}

	// background consumer that appends booking events to logs/booking.log
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	router.Register(e, h, cfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
