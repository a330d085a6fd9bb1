package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/mirelleva/lunara/internal/api"
	"github.com/mirelleva/lunara/internal/db"
	"github.com/sirupsen/logrus"
)

func main() {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "lunara.db"))
	port := getEnv("PORT", "8080")

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		logrus.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, secretKey)

	app := fiber.New(fiber.Config{
		AppName:               "Lunara",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logrus.Errorf("server shutdown failed: %v", err)
		}
	}()

	logrus.Infof("Lunara listening on http://0.0.0.0:%s (db: %s)", port, dbPath)
	if err := app.Listen(":" + port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
