package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	LogLevel   string
	LogFormat  string

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		MaxConns int32
	}
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "json"),
	}

	// DB_HOST falls back to localhost for local development; everything
	// else about the store must be spelled out.
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnv("DB_PORT", "5432")

	cfg.Database.User = os.Getenv("DB_USER")
	if cfg.Database.User == "" {
		return nil, fmt.Errorf("DB_USER must be set")
	}

	cfg.Database.Password = os.Getenv("DB_PASSWORD")
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD must be set")
	}

	cfg.Database.Name = os.Getenv("DB_NAME")
	if cfg.Database.Name == "" {
		return nil, fmt.Errorf("DB_NAME must be set")
	}

	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))
	if err != nil || maxConns <= 0 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be a positive integer")
	}
	cfg.Database.MaxConns = int32(maxConns)

	return cfg, nil
}

// DatabaseURL builds the pgx connection string, bounding the pool size.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?pool_max_conns=%d",
		url.QueryEscape(c.Database.User),
		url.QueryEscape(c.Database.Password),
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.MaxConns,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
