package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	APIPort          string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	RedisAddress     string
	RedisPassword    string
	JWTSecret        string
	AllowedOrigins   string
)

// LoadConfig loads the .env file if present and populates the configuration
// variables from the environment
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	APIPort = getEnv("API_PORT", "8080")
	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "cyberlearn")
	RedisAddress = getEnv("REDIS_ADDRESS", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	JWTSecret = getEnv("JWT_SECRET", "")
	AllowedOrigins = getEnv("ALLOWED_ORIGINS", "http://localhost:5173")

	if JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
}

func getEnv(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
