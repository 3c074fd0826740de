package config

import (
	"os"
)

type Config struct {
	Port           string
	AllowedOrigins string
	LogLevel       string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults match the local dev setup: server on :8000, client served
	// from a separate origin, so CORS stays wide open.
	env := Config{
		Port:           "8000",
		AllowedOrigins: "*",
		LogLevel:       "info",
	}

	envPort := os.Getenv("PORT")
	envAllowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	envLogLevel := os.Getenv("LOG_LEVEL")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envAllowedOrigins) != 0 {
		env.AllowedOrigins = envAllowedOrigins
	}

	if len(envLogLevel) != 0 {
		env.LogLevel = envLogLevel
	}

	return &env, nil
}
