package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"voyago/internal/planner"
)

// Config captures runtime configuration for the planning service.
type Config struct {
	Port         string
	PostgresURL  string
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string
	Planner      planner.Config
}

// FromEnv creates a configuration instance sourced from environment
// variables. The planner configuration is validated here so a bad
// deployment fails at startup, not mid-request.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		PostgresURL:  os.Getenv("POSTGRES_URL"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  os.Getenv("OPENAI_MODEL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		Planner:      planner.DefaultConfig(),
	}

	if raw := os.Getenv("PLANNER_MAX_DETAILED_DAYS"); raw != "" {
		if _, err := fmt.Sscanf(raw, "%d", &cfg.Planner.MaxIndividualActivityDays); err != nil {
			return Config{}, fmt.Errorf("parse PLANNER_MAX_DETAILED_DAYS: %w", err)
		}
	}
	if raw := os.Getenv("PLANNER_MAX_ACTIVITIES_PER_DAY"); raw != "" {
		if _, err := fmt.Sscanf(raw, "%d", &cfg.Planner.MaxActivitiesPerDay); err != nil {
			return Config{}, fmt.Errorf("parse PLANNER_MAX_ACTIVITIES_PER_DAY: %w", err)
		}
	}

	if err := cfg.Planner.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
