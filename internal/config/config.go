// README: Config loader with env defaults for HTTP, DB, Redis, external APIs and planner settings.
package config

import (
	"os"
	"strconv"
)

type PlannerConfig struct {
	BudgetTolerance  float64
	MaxReoptAttempts int
	LogsDir          string
}

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Planner PlannerConfig
	AI      struct {
		GeminiKey string
	}
	Maps struct {
		APIKey string
	}
	Pricing struct {
		RapidAPIKey  string
		RapidAPIHost string
	}
	Firebase struct {
		ProjectID       string
		CredentialsFile string
	}
}

// Load reads configuration from the environment. Empty DSN/Redis/API keys are
// allowed; the wiring in cmd degrades to heuristic-only collaborators.
func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRAVELPRO_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("TRAVELPRO_DB_DSN")
	cfg.Redis.Addr = os.Getenv("TRAVELPRO_REDIS_ADDR")
	cfg.Planner.BudgetTolerance = envOrDefaultFloat("TRAVELPRO_BUDGET_TOLERANCE", 0.05)
	cfg.Planner.MaxReoptAttempts = envOrDefaultInt("TRAVELPRO_MAX_REOPT_ATTEMPTS", 3)
	cfg.Planner.LogsDir = envOrDefault("TRAVELPRO_LOGS_DIR", "logs")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.Maps.APIKey = os.Getenv("MAPS_API_KEY")
	cfg.Pricing.RapidAPIKey = os.Getenv("RAPIDAPI_KEY")
	cfg.Pricing.RapidAPIHost = envOrDefault("RAPIDAPI_HOST", "booking-com15.p.rapidapi.com")
	cfg.Firebase.ProjectID = os.Getenv("TRAVELPRO_FIREBASE_PROJECT_ID")
	cfg.Firebase.CredentialsFile = os.Getenv("TRAVELPRO_FIREBASE_CREDENTIALS")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}
