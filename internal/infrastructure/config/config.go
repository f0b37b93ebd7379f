// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Postgres (logbook flights)
	PostgresURI string

	// MongoDB (lookup audit log)
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// Flight-status provider
	AeroAPIKey  string
	AeroAPIURL  string
	HTTPTimeout time.Duration

	// Reference datasets
	AirportsDatasetURL string
	AirlinesDatasetURL string

	// Home market, used for the locality flag on saved flights
	HomeCountry    string
	HomeICAOPrefix string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		PostgresURI: getEnv("POSTGRES_DSN", "host=localhost user=flightlog dbname=flightlog port=5432"),

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "flightlog"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		AeroAPIKey:  getEnv("FLIGHTAWARE_API_KEY", ""),
		AeroAPIURL:  getEnv("AEROAPI_URL", "https://aeroapi.flightaware.com/aeroapi"),
		HTTPTimeout: time.Duration(getEnvAsInt("HTTP_TIMEOUT", 20)) * time.Second,

		AirportsDatasetURL: getEnv("AIRPORTS_DATASET_URL", "https://raw.githubusercontent.com/mwgg/Airports/master/airports.json"),
		AirlinesDatasetURL: getEnv("AIRLINES_DATASET_URL", "https://raw.githubusercontent.com/npow/airline-codes/master/airlines.json"),

		HomeCountry:    getEnv("HOME_COUNTRY", "ZA"),
		HomeICAOPrefix: getEnv("HOME_ICAO_PREFIX", "FA"),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
