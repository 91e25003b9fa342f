package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	MongoURI      string
	MongoDB       string
	JWTSecret     string
	AdminEmail    string
	AdminPassword string
	Env           string
	AllowedOrigin string
	StripeKey     string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// LoadConfig reads the environment (optionally seeded from a .env file).
// JWT_SECRET has no fallback on purpose; the caller must treat an empty
// value as fatal.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	return Config{
		Port:          getEnv("PORT", "3000"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "carpool"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@carpool.local"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "changeme123"),
		Env:           getEnv("APP_ENV", "development"),
		AllowedOrigin: getEnv("ALLOWED_ORIGINS", "*"),
		StripeKey:     os.Getenv("STRIPE_API_KEY"),
	}
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}
