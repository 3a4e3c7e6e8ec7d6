package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the portal reads from the environment. A .env file,
// when present, is loaded into the environment before Load runs.
type Config struct {
	ListenAddr      string
	APIBaseURL      string
	APITimeout      time.Duration
	SessionKeysFile string
	FlowTTL         time.Duration
	CookieSecure    bool
	TemplatesDir    string
	StaticDir       string
}

func Load() Config {
	return Config{
		ListenAddr:      getenv("LISTEN_ADDR", ":8080"),
		APIBaseURL:      getenv("API_BASE_URL", "https://ssp-backend-1ovl.onrender.com"),
		APITimeout:      getenvDuration("API_TIMEOUT", 15*time.Second),
		SessionKeysFile: getenv("SESSION_KEYS_FILE", "jwks.json"),
		FlowTTL:         getenvDuration("FLOW_TTL", time.Hour),
		CookieSecure:    getenvBool("COOKIE_SECURE", false),
		TemplatesDir:    getenv("TEMPLATES_DIR", "templates"),
		StaticDir:       getenv("STATIC_DIR", "static"),
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}
