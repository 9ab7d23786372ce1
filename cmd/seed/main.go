package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tasktracker/internal/config"
	"tasktracker/internal/db"
	"tasktracker/internal/model"
	"tasktracker/internal/repository"
)

const (
	demoUserName     = "demo"
	demoUserEmail    = "demo@tasktracker.local"
	demoUserPassword = "demo-password"
	demoUserCountry  = "India"
)

var demoProjects = []struct {
	Title       string
	Description string
	Status      model.ProjectStatus
}{
	{"Website Redesign", "Refresh the marketing site for the Q4 launch", model.ProjectStatusPending},
	{"Mobile App MVP", "First cut of the task tracking mobile client", model.ProjectStatusPending},
	{"Internal Dashboard", "Metrics dashboard for the support team", model.ProjectStatusCompleted},
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.EmailOTP{},
		&model.VerifiedEmail{},
		&model.Project{},
		&model.Activity{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	activityRepo := repository.NewActivityRepository(gormDB)

	// Create the demo user unless it already exists
	user, err := userRepo.FindByEmail(ctx, demoUserEmail)
	if err != nil && err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to look up demo user: %v", err)
	}
	if user == nil || err == gorm.ErrRecordNotFound {
		hashed, err := bcrypt.GenerateFromPassword([]byte(demoUserPassword), 10)
		if err != nil {
			log.Fatalf("Failed to hash demo password: %v", err)
		}
		user = &model.User{
			Name:         demoUserName,
			Email:        demoUserEmail,
			PasswordHash: string(hashed),
			Country:      demoUserCountry,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Printf("Created demo user %s (%s)", demoUserName, demoUserEmail)
	} else {
		log.Printf("Demo user %s already exists, reusing", demoUserEmail)
	}

	// Seed demo projects with matching activity entries
	created := 0
	for _, item := range demoProjects {
		project := &model.Project{
			Title:       item.Title,
			Description: item.Description,
			OwnerID:     user.ID,
			Status:      item.Status,
		}
		if err := projectRepo.Create(ctx, project); err != nil {
			log.Printf("Skipping project %q: %v", item.Title, err)
			continue
		}

		activity := &model.Activity{
			UserID:      user.ID,
			Action:      fmt.Sprintf("Created project: %s", item.Title),
			Title:       item.Title,
			Description: item.Description,
		}
		if err := activityRepo.Create(ctx, activity); err != nil {
			log.Printf("Failed to record activity for %q: %v", item.Title, err)
		}
		created++
	}

	log.Printf("Seed complete: %d projects created for %s", created, demoUserEmail)
}
