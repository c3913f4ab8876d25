package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"shetkarai/adapters/identity"
	"shetkarai/adapters/inference"
	"shetkarai/adapters/weather"
	"shetkarai/app"
	"shetkarai/internal/config"
	"shetkarai/internal/upload"
	"shetkarai/ports"
	"shetkarai/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	identityBackend, err := newIdentityBackend(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize identity backend", zap.Error(err))
	}

	uploads := upload.NewSaver(cfg.Upload.Dir, cfg.Upload.AllowedExtensions)
	uploads.StartSweeper(cfg.Upload.MaxAge, logger)

	authService := app.NewAuthService(identityBackend, logger)
	diagnosisService := app.NewDiagnosisService(uploads, inference.NewDiseaseDetector(nil))
	soilService := app.NewSoilService(uploads, inference.NewSoilAnalyzer(nil))
	weatherService := app.NewWeatherService(weather.NewClient(cfg.Weather.APIURL, cfg.Weather.APIKey, logger))

	server, err := ui.NewServer(cfg, authService, diagnosisService, soilService, weatherService, logger)
	if err != nil {
		logger.Fatal("failed to initialize server", zap.Error(err))
	}

	if err := server.Start(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Server.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// newIdentityBackend picks the local Postgres store when DATABASE_URL
// is configured without a Supabase project, and the hosted Supabase
// service otherwise.
func newIdentityBackend(cfg *config.Config, logger *zap.Logger) (ports.Identity, error) {
	if cfg.Database.URL != "" && cfg.Supabase.URL == "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		if err := identity.Migrate(context.Background(), db.DB); err != nil {
			return nil, err
		}
		logger.Info("using local Postgres identity store")
		return identity.NewPostgresStore(db, logger), nil
	}

	logger.Info("using Supabase identity service", zap.String("url", cfg.Supabase.URL))
	return identity.NewSupabase(cfg.Supabase.URL, cfg.Supabase.Key, logger), nil
}
