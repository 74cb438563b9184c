package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/teamtrack/attendance-service/config"
	"github.com/teamtrack/attendance-service/db"
	"github.com/teamtrack/attendance-service/internal/attendance/handler"
	"github.com/teamtrack/attendance-service/internal/attendance/repository/postgres"
	"github.com/teamtrack/attendance-service/internal/attendance/service"
	"github.com/teamtrack/attendance-service/internal/geocode"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	attendanceRepo := postgres.NewAttendanceRepository(pool)
	geocoder := geocode.NewNominatim(cfg.GeocoderBaseURL, cfg.GeocoderUserAgent)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenExpiryMin)
	userService := service.NewUserService(userRepo, tokenService)
	attendanceService := service.NewAttendanceService(attendanceRepo, geocoder)
	reportService := service.NewReportService(attendanceRepo)

	authHandler := handler.NewAuthHandler(userService, tokenService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	adminHandler := handler.NewAdminHandler(userService, reportService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, attendanceHandler, adminHandler)

	slog.Info("starting attendance service", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
