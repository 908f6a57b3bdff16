package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// APIKey is the Google API credential shared by the weather and
	// geocoding endpoints. May be empty; the client reports a structured
	// error on first use rather than at load time.
	APIKey          string
	DefaultLocation string
	ForecastHours   int
	Language        string
	Debug           bool
}

// apiKeyVars are tried in order; the first non-empty value wins. The plain
// GOOGLE_API_KEY comes first because the weather endpoints accept the same
// key as the Maps platform.
var apiKeyVars = []string{
	"GOOGLE_API_KEY",
	"GOOGLE_WEATHER_API_KEY",
	"GOOGLE_MAPS_API_KEY",
}

const (
	defaultLocation = "tel aviv"
	defaultHours    = 24
	defaultLanguage = "en"
)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		APIKey:          firstEnv(apiKeyVars),
		DefaultLocation: getEnv("WEATHER_DEFAULT_LOCATION", defaultLocation),
		ForecastHours:   getEnvAsInt("WEATHER_FORECAST_HOURS", defaultHours),
		Language:        getEnv("WEATHER_LANG", defaultLanguage),
		Debug:           os.Getenv("WEATHER_DEBUG") != "",
	}

	if config.Language != "en" && config.Language != "he" {
		config.Language = defaultLanguage
	}

	return config, nil
}

func firstEnv(keys []string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
