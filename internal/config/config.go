package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from its environment.
type Config struct {
	MongoURI  string // connection string to the document store
	DBName    string // target database name
	JWTSecret string // symmetric signing secret for auth tokens
	Port      string // HTTP listen port
}

// Load reads configuration from the environment, consulting a .env file
// when one is present. A missing connection string is a startup error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:  os.Getenv("MONGODB_CONNECTION_STRING"),
		DBName:    getenv("MONGODB_DB_NAME", "library"),
		JWTSecret: getenv("JWT_SECRET", "supersecret"),
		Port:      getenv("PORT", "8080"),
	}
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGODB_CONNECTION_STRING is not defined")
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
