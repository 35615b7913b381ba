// README: Config loader with env defaults for HTTP and the LLM provider.
package config

import (
	"os"
	"strings"
)

// DefaultModel is used when no model identifier is configured.
const DefaultModel = "gemini-2.0-flash"

type ProviderConfig struct {
	// APIKey is required; startup fails without it.
	APIKey string
	// Endpoint overrides the provider default base URL when non-empty.
	Endpoint string
	Model    string
}

type Config struct {
	HTTP struct {
		Addr string
		// AllowedOrigins feeds the CORS middleware; "*" allows any origin.
		AllowedOrigins []string
	}
	Provider ProviderConfig
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRAVELBOT_HTTP_ADDR", ":8080")
	cfg.HTTP.AllowedOrigins = splitCSV(envOrDefault("TRAVELBOT_CORS_ORIGINS", "*"))
	cfg.Provider.APIKey = envOrError("GEMINI_API_KEY")
	cfg.Provider.Endpoint = os.Getenv("TRAVELBOT_GEMINI_ENDPOINT")
	cfg.Provider.Model = envOrDefault("TRAVELBOT_GEMINI_MODEL", DefaultModel)
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
