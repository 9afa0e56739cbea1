package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all runtime configuration, loaded from the environment.
type AppConfig struct {
	Port        string
	DatabaseURL string

	// JWTSecret signs session tokens; TokenTTL bounds their validity.
	JWTSecret string
	TokenTTL  time.Duration

	// Upstream base URLs. Defaults point at the real providers; tests
	// override them with local stub servers.
	GeocodingBaseURL string
	ForecastBaseURL  string
	RadarBaseURL     string
}

// Load reads configuration from environment with sensible defaults.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	return &AppConfig{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		JWTSecret:        getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:         getEnvDuration("TOKEN_TTL", 7*24*time.Hour),
		GeocodingBaseURL: getEnv("GEOCODING_BASE_URL", "https://geocoding-api.open-meteo.com"),
		ForecastBaseURL:  getEnv("FORECAST_BASE_URL", "https://api.open-meteo.com"),
		RadarBaseURL:     getEnv("RADAR_BASE_URL", "https://api.rainviewer.com"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil {
			log.Printf("Invalid %s %q, using default %s", key, value, defaultValue)
			return defaultValue
		}
		return d
	}
	return defaultValue
}
