package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "souvenaria-backend/internal/api/http"
	"souvenaria-backend/internal/config"
	"souvenaria-backend/internal/jobs"
	"souvenaria-backend/internal/logger"
	"souvenaria-backend/internal/repository/postgres"
	"souvenaria-backend/internal/scheduler"
	"souvenaria-backend/internal/security"
	"souvenaria-backend/internal/service"
	"souvenaria-backend/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Souvenaria Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Storage Service
	localStorage, err := storage.NewLocalStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize local storage", "error", err)
		log.Fatalf("Failed to initialize local storage: %v", err)
	}
	logger.Info("Using local storage", "upload_dir", cfg.Storage.UploadDir)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, store.SessionRepository, tokenManager)
	familySvc := service.NewFamilyService(
		store.FamilyRepository,
		store.JoinRequestRepository,
		store.UserRepository,
		emailSvc,
	)
	eventSvc := service.NewEventService(store.EventRepository, store.FamilyRepository)
	profileSvc := service.NewProfileService(store.UserRepository, store.FamilyRepository)
	memorySvc := service.NewMemoryService(store.MemoryRepository, store.FamilyRepository, localStorage)

	// Assemble API routes
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Tokens:     tokenManager,
		AuthSvc:    authSvc,
		FamilySvc:  familySvc,
		EventSvc:   eventSvc,
		ProfileSvc: profileSvc,
		MemorySvc:  memorySvc,
		Store:      localStorage,
	})

	// Start scheduler for maintenance jobs
	jobRunner := jobs.NewJobRunner(
		store.JoinRequestRepository,
		store.SessionRepository,
		store.EventRepository,
		store.FamilyRepository,
		emailSvc,
		cfg,
	)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
