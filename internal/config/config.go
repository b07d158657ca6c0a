package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBType        string
	PostgresURL   string
	MongoURI      string
	MongoDatabase string
	MigrationsURL string
	JWTSecret     string
	BcryptCost    int
	AllowOrigins  []string
}

// Load reads .env when present and falls back to the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg := &Config{
		Port:          os.Getenv("API_PORT"),
		DBType:        os.Getenv("DB_TYPE"),
		PostgresURL:   os.Getenv("POSTGRES_URL"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: os.Getenv("MONGO_DATABASE"),
		MigrationsURL: os.Getenv("MIGRATIONS_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBType == "" {
		cfg.DBType = "postgres"
	}
	if cfg.MigrationsURL == "" {
		cfg.MigrationsURL = "file://db/migrations"
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if cost, err := strconv.Atoi(v); err == nil {
			cfg.BcryptCost = cost
		}
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}

	return cfg
}
