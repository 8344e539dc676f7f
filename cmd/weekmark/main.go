package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/weekmark/internal/api"
	"github.com/terraincognita07/weekmark/internal/config"
	"github.com/terraincognita07/weekmark/internal/services"
	"github.com/terraincognita07/weekmark/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	location := mustLoadLocation(cfg.TimeZone)
	time.Local = location

	selector := openStores(cfg.DBPath)

	userService := services.NewUserService(selector)
	timetableService := services.NewTimetableService(selector, location)
	handler := api.NewHandler(userService, timetableService, selector)

	app := fiber.New(fiber.Config{
		AppName:               "Weekmark",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Weekmark listening on http://0.0.0.0:%s (database: %s, tz: %s)",
		cfg.Port, selector.Active().Kind(), location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// openStores tries the durable store once at startup and falls back to the
// volatile store when it cannot be opened. The selector keeps re-checking
// durable liveness per call afterwards.
func openStores(dbPath string) *store.Selector {
	volatile := store.NewMemoryStore()

	database, err := store.OpenSQLite(dbPath)
	if err != nil {
		log.Printf("durable store unavailable, using in-memory storage: %v", err)
		return store.NewSelector(nil, volatile)
	}

	durable, err := store.NewDurableStore(database)
	if err != nil {
		log.Printf("durable store unavailable, using in-memory storage: %v", err)
		return store.NewSelector(nil, volatile)
	}

	return store.NewSelector(durable, volatile)
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
