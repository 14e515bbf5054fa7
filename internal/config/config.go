// Package config loads process configuration from the environment, with an
// optional .env file for development.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           int
	Env            string
	DBPath         string
	AllowedOrigins []string

	// Identity provider
	GoogleAPIKey       string
	IdentityBaseURL    string
	SecureTokenBaseURL string

	// Suggestion model
	OllamaEndpoint string
	OllamaModel    string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:           4000,
		Env:            "development",
		DBPath:         "taskflow.db",
		AllowedOrigins: []string{"http://localhost:3000"},
	}

	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Port = n
		}
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("TASKFLOW_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.AllowedOrigins = origins
	}

	cfg.GoogleAPIKey = os.Getenv("GOOGLE_API_KEY")
	cfg.IdentityBaseURL = os.Getenv("IDENTITY_BASE_URL")
	cfg.SecureTokenBaseURL = os.Getenv("SECURETOKEN_BASE_URL")

	cfg.OllamaEndpoint = os.Getenv("OLLAMA_ENDPOINT")
	cfg.OllamaModel = os.Getenv("OLLAMA_MODEL")

	return cfg
}

// Development reports whether the process runs in development mode, which
// enables error detail in responses and plain-text logs.
func (c Config) Development() bool {
	return c.Env == "development"
}
