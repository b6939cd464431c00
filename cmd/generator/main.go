package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"floorplan-sim/internal/common/config"
	"floorplan-sim/internal/common/logging"
	"floorplan-sim/internal/common/middleware"
	"floorplan-sim/internal/generator/door"
	"floorplan-sim/internal/generator/handlers"
	"floorplan-sim/internal/generator/repository"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Generator Service
// ============================================================

func main() {
	cfg := config.Load()
	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	doorCfg, err := door.LoadConfig(cfg.DoorConfigPath)
	if err != nil {
		logger.Fatal("load door config", "err", err)
	}
	defaultKind, err := door.ParseKind(cfg.DefaultKind)
	if err != nil {
		logger.Fatal("default door kind", "err", err)
	}

	db, err := repository.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.Fatal("open db", "err", err)
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(context.Background()); err != nil {
		logger.Fatal("init db", "err", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Generator Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.Logger())
	app.Use(middleware.CORS())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	app.Get("/health/ready", func(c fiber.Ctx) error {
		if err := db.PingContext(context.Background()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ready"})
	})

	// ============================================================
	// Generator Routes
	// ============================================================

	handlers.NewDoorHandler(doorCfg, defaultKind, repo, logger).Register(app)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("starting generator service", "addr", addr, "env", cfg.Environment)

	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", "err", err)
	}
}
