package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/handlers"
	"github.com/devfolio/backend/internal/services"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	if cfg.AdminKey == "" {
		log.Println("Warning: ADMIN_KEY not set, admin unlock is disabled")
	}

	var (
		profileService     services.ProfileService
		settingsService    services.SettingsService
		projectService     services.ProjectService
		experienceService  services.ExperienceService
		achievementService services.AchievementService
		contactService     services.ContactService
	)

	if cfg.MongoURI != "" {
		store, err := services.NewMongoStore(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer store.Close(context.Background())

		profileService = store.Profiles()
		settingsService = store.Settings()
		projectService = store.Projects()
		experienceService = store.Experiences()
		achievementService = store.Achievements()
		contactService = store.Contacts()
		log.Printf("Using MongoDB database %q", cfg.MongoDatabase)
	} else {
		var err error
		if profileService, err = services.NewLocalProfileService(cfg.DataDir); err != nil {
			log.Fatalf("Failed to open local store: %v", err)
		}
		if settingsService, err = services.NewLocalSettingsService(cfg.DataDir); err != nil {
			log.Fatalf("Failed to open local store: %v", err)
		}
		if projectService, err = services.NewLocalProjectService(cfg.DataDir); err != nil {
			log.Fatalf("Failed to open local store: %v", err)
		}
		if experienceService, err = services.NewLocalExperienceService(cfg.DataDir); err != nil {
			log.Fatalf("Failed to open local store: %v", err)
		}
		if achievementService, err = services.NewLocalAchievementService(cfg.DataDir); err != nil {
			log.Fatalf("Failed to open local store: %v", err)
		}
		if contactService, err = services.NewLocalContactService(cfg.DataDir); err != nil {
			log.Fatalf("Failed to open local store: %v", err)
		}
		log.Printf("MONGO_URI not set, using local JSON store in %s", cfg.DataDir)
	}

	// Create the singleton documents up front so first reads never race.
	if err := profileService.EnsureDefault(context.Background()); err != nil {
		log.Fatalf("Failed to initialize profile: %v", err)
	}
	if err := settingsService.EnsureDefault(context.Background()); err != nil {
		log.Fatalf("Failed to initialize settings: %v", err)
	}

	uploadService, err := services.NewUploadService(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directories: %v", err)
	}

	mailer := services.NewSendGridMailer(cfg.SendGridAPIKey, cfg.ContactFrom, cfg.ContactTo)

	router := handlers.NewRouter(
		handlers.RouterConfig{
			AllowedOrigin: cfg.AllowedOrigin,
			JWTSecret:     cfg.JWTSecret,
			UploadDir:     cfg.UploadDir,
		},
		handlers.NewProfileHandler(profileService, uploadService, cfg.MaxUploadSizeMB),
		handlers.NewSettingsHandler(settingsService, uploadService, cfg.MaxUploadSizeMB),
		handlers.NewProjectHandler(projectService),
		handlers.NewExperienceHandler(experienceService),
		handlers.NewAchievementHandler(achievementService),
		handlers.NewContactHandler(contactService, mailer),
		handlers.NewAdminHandler(cfg.AdminKey, cfg.JWTSecret, cfg.TokenTTL),
	)

	log.Printf("Portfolio API server starting on %s", cfg.ServerAddress)
	if err := http.ListenAndServe(cfg.ServerAddress, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
