package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"shetkarai/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Session  SessionConfig
	Supabase SupabaseConfig
	Database DatabaseConfig
	Upload   UploadConfig
	Weather  WeatherConfig
	Language LanguageConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port  string
	Debug bool
}

// SessionConfig holds cookie session settings
type SessionConfig struct {
	SecretKey string
}

// SupabaseConfig holds settings for the hosted identity service
type SupabaseConfig struct {
	URL string
	Key string
}

// DatabaseConfig holds settings for the local Postgres identity store
type DatabaseConfig struct {
	URL string
}

// UploadConfig holds file upload settings
type UploadConfig struct {
	Dir               string
	AllowedExtensions []string
	// MaxAge > 0 enables periodic cleanup of old uploads; 0 keeps files forever.
	MaxAge time.Duration
}

// WeatherConfig holds settings for the external weather API
type WeatherConfig struct {
	APIKey string
	APIURL string
}

// LanguageConfig holds localization settings
type LanguageConfig struct {
	Default string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:  getEnvOrDefault("PORT", "5001"),
			Debug: getEnvBoolOrDefault("DEBUG", false),
		},
		Session: SessionConfig{
			SecretKey: getEnvOrDefault("SECRET_KEY", "dev-secret-key-change-in-production"),
		},
		Supabase: SupabaseConfig{
			URL: getEnvOrDefault("SUPABASE_URL", ""),
			Key: getEnvOrDefault("SUPABASE_KEY", ""),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Upload: UploadConfig{
			Dir:               getEnvOrDefault("UPLOAD_DIR", "./uploads"),
			AllowedExtensions: getEnvListOrDefault("ALLOWED_EXTENSIONS", []string{"png", "jpg", "jpeg", "gif"}),
			MaxAge:            getEnvDurationOrDefault("UPLOAD_MAX_AGE", 0),
		},
		Weather: WeatherConfig{
			APIKey: getEnvOrDefault("WEATHER_API_KEY", ""),
			APIURL: getEnvOrDefault("WEATHER_API_URL", "https://api.openweathermap.org/data/2.5/weather"),
		},
		Language: LanguageConfig{
			Default: getEnvOrDefault("DEFAULT_LANGUAGE", "en"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Session.SecretKey == "" {
		return errors.ConfigInvalid("SECRET_KEY is required")
	}
	if config.Supabase.URL == "" && config.Database.URL == "" {
		return errors.ConfigInvalid("an identity backend is required: set SUPABASE_URL or DATABASE_URL")
	}
	if config.Supabase.URL != "" && config.Supabase.Key == "" {
		return errors.ConfigInvalid("SUPABASE_KEY is required when SUPABASE_URL is set")
	}
	if len(config.Upload.AllowedExtensions) == 0 {
		return errors.ConfigInvalid("ALLOWED_EXTENSIONS must not be empty")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, strings.ToLower(item))
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
