package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bmi-tracker/internal/config"
	"github.com/iliyamo/bmi-tracker/internal/database"
	"github.com/iliyamo/bmi-tracker/internal/handler"
	"github.com/iliyamo/bmi-tracker/internal/queue"
	"github.com/iliyamo/bmi-tracker/internal/repository"
	"github.com/iliyamo/bmi-tracker/internal/router"
	"github.com/iliyamo/bmi-tracker/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatalf("database migration failed: %v", err)
	}
	cancel()
	log.Println("database connection successful")

	// Redis is optional: a nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	store := repository.NewMeasurementRepo(db)
	svc := service.NewMeasurementService(store, queue.PublishMeasurementRecorded)
	h := handler.NewMeasurementHandler(svc, cfg.Env)

	// Background consumer mirrors recorded measurements into a log file.
	go func() {
		if err := queue.StartMeasurementConsumer(); err != nil {
			log.Printf("measurement consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterMeasurements(e, h, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
