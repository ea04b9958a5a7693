package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	DBConnString    string
	RedisAddr       string
	SessionTTL      time.Duration
	ShutdownTimeout time.Duration

	StoreName          string
	WhatsAppNumber     string
	ClearCartOnHandoff bool
}

// FromEnv builds Config with defaults, overridden by environment variables.
// An empty DB_DSN serves the embedded catalog; an empty REDIS_ADDR keeps
// session carts in process memory.
func FromEnv() Config {
	return Config{
		HTTPAddr:           envOrDefault("HTTP_ADDR", ":8080"),
		DBConnString:       os.Getenv("DB_DSN"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		SessionTTL:         envHours("SESSION_TTL_HOURS", 24*time.Hour),
		ShutdownTimeout:    envSeconds("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		StoreName:          envOrDefault("STORE_NAME", "G2 Products"),
		WhatsAppNumber:     envOrDefault("WHATSAPP_NUMBER", "918431576033"),
		ClearCartOnHandoff: envBool("CHECKOUT_CLEAR_CART", false),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envSeconds(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envHours(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		hours, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(hours) * time.Hour
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err == nil {
			return parsed
		}
	}
	return def
}
