package main

import (
	"log"
	"net/http"
	"os"

	_ "tasktracker/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tasktracker/internal/auth"
	"tasktracker/internal/cache"
	"tasktracker/internal/config"
	"tasktracker/internal/db"
	"tasktracker/internal/handler"
	"tasktracker/internal/mailer"
	"tasktracker/internal/model"
	"tasktracker/internal/notify"
	"tasktracker/internal/repository"
	"tasktracker/internal/router"
	"tasktracker/internal/service"
)

// @title Task Tracker API
// @version 1.0
// @description Project tracking API with OTP-gated registration, JWT authentication, and activity logging.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Activity{},
			&model.Project{},
			&model.EmailOTP{},
			&model.VerifiedEmail{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.EmailOTP{},
		&model.VerifiedEmail{},
		&model.Project{},
		&model.Activity{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Notification pipeline: SMTP sender behind an async dispatcher
	smtpMailer := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	dispatcher := notify.NewDispatcher(smtpMailer)
	defer dispatcher.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	otpRepo := repository.NewOTPRepository(gormDB)
	verifiedRepo := repository.NewVerifiedEmailRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	activityRepo := repository.NewActivityRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	identity := auth.RequireUser(userRepo, cacheClient)

	// Initialize services
	otpService := service.NewOTPService(userRepo, otpRepo, verifiedRepo, dispatcher, cfg.OTPExpiry)
	authService := service.NewAuthService(userRepo, verifiedRepo, jwtService, dispatcher, cfg.VerificationWindow)
	projectService := service.NewProjectService(projectRepo, activityRepo, dispatcher, cfg.RevenuePerProject)
	activityService := service.NewActivityService(activityRepo)

	// Initialize handlers
	otpHandler := handler.NewOTPHandler(otpService)
	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	activityHandler := handler.NewActivityHandler(activityService)
	notificationHandler := handler.NewNotificationHandler()

	// Register routes
	router.Register(
		e,
		cfg,
		identity,
		otpHandler,
		authHandler,
		projectHandler,
		activityHandler,
		notificationHandler,
	)

	log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
