package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	MongoDBURI       string
	MongoDBDatabase  string
	FrontendURL      string
	IdentityAPIKey   string
	SnapshotSchedule string
	ServerName       string
	Version          string
}

func Load() *Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		MongoDBURI:       getEnv("MONGODB_URI", ""),
		MongoDBDatabase:  getEnv("MONGODB_DATABASE", "freshtrack"),
		FrontendURL:      getEnv("FRONTEND_URL", "http://localhost:3000"),
		IdentityAPIKey:   getEnv("IDENTITY_API_KEY", ""),
		SnapshotSchedule: getEnv("SNAPSHOT_SCHEDULE", "0 * * * *"),
		ServerName:       getEnv("SERVER_NAME", "FreshTrack Admin API"),
		Version:          getEnv("VERSION", "1.0.0"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
