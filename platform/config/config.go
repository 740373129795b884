package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
)

type Config struct {
	HTTPAddr    string   `validate:"required"`
	SocketAddr  string   `validate:"required"`
	CorsOrigins []string `validate:"min=1,dive,required"`
	RedisURL    string
	SavePrefix  string `validate:"required"`
	DB          DBConfig
}

type DBConfig struct {
	User     string
	Addr     string
	Password string
	Name     string
}

// Enabled reports whether enough is set to reach postgres.
func (c DBConfig) Enabled() bool {
	return c.Addr != "" && c.Name != ""
}

// Load reads the environment (and .env, through godotenv) and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:    getenv("HTTP_ADDR", ":4101"),
		SocketAddr:  getenv("SOCKET_ADDR", ":8000"),
		CorsOrigins: splitList(getenv("CORS_ORIGINS", "http://localhost:3000")),
		RedisURL:    os.Getenv("REDIS_URL"),
		SavePrefix:  getenv("SAVE_PREFIX", "cashflow-"),
		DB: DBConfig{
			User:     os.Getenv("DB_USER"),
			Addr:     os.Getenv("DB_ADDR"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
