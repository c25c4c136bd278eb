package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dharmasatrya/flightrelay/pkg/currency"
)

type Config struct {
	AppVersion string
	Port       string

	SerpAPIKey      string
	SerpAPIBaseURL  string
	SearchCurrency  string
	SearchLocale    string
	UpstreamTimeout time.Duration

	GeminiAPIKey string
	GeminiModel  string
}

// Load reads configuration from the environment, with a .env file picked up
// when present. A missing SERPAPI_KEY is not an error here: /health reports
// it and searches fail with a configuration envelope.
func Load() Config {
	godotenv.Load()

	return Config{
		AppVersion: getEnv("APP_VERSION", "1.1.0"),
		Port:       getEnv("PORT", "3000"),

		SerpAPIKey:      getEnv("SERPAPI_KEY", ""),
		SerpAPIBaseURL:  getEnv("SERPAPI_BASE_URL", "https://serpapi.com/search.json"),
		SearchCurrency:  currency.Normalize(getEnv("SEARCH_CURRENCY", "USD"), "USD"),
		SearchLocale:    getEnv("SEARCH_LOCALE", "en"),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 30*time.Second),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
