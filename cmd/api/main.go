package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/rosterbook/gradebook-api/internal/config"
	"github.com/rosterbook/gradebook-api/internal/handler"
	"github.com/rosterbook/gradebook-api/internal/middleware"
	"github.com/rosterbook/gradebook-api/internal/router"
	"github.com/rosterbook/gradebook-api/internal/service"
	"github.com/rosterbook/gradebook-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	datastore, err := store.New(cfg.DataDir, logger)
	if err != nil {
		log.Fatalf("failed to initialise data directory: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	gradebookService := service.New(datastore, validate, logger)
	gradebookService.LoadOrSeed()

	authService := service.NewAuthService(service.DemoAccounts(), cfg.JWTSecret, cfg.TokenTTL, validate, logger)

	authHandler := handler.NewAuthHandler(authService, logger)
	studentHandler := handler.NewStudentHandler(gradebookService, logger)
	teacherHandler := handler.NewTeacherHandler(gradebookService, logger)
	gradeHandler := handler.NewGradeHandler(gradebookService, logger)
	dataHandler := handler.NewDataHandler(gradebookService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:    authHandler,
		StudentHandler: studentHandler,
		TeacherHandler: teacherHandler,
		GradeHandler:   gradeHandler,
		DataHandler:    dataHandler,
		JWTMiddleware:  middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
