package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port         string
	APIBaseURL   string        // base URL HR API, mis. https://localhost:7097/api
	APITimeout   time.Duration // timeout tetap untuk semua request keluar
	RedisAddr    string
	KafkaBrokers []string // kosong = audit stream dimatikan
	SessionTTL   time.Duration
	TemplateGlob string
}

func Load() (Config, error) {
	port := os.Getenv("ADMIN_PORT")
	if port == "" {
		port = "3000"
	}

	baseURL := os.Getenv("HR_API_BASE_URL")
	if baseURL == "" {
		return Config{}, fmt.Errorf("HR_API_BASE_URL required")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	glob := os.Getenv("TEMPLATE_GLOB")
	if glob == "" {
		glob = "web/templates/*.html"
	}

	return Config{
		Port:         port,
		APIBaseURL:   baseURL,
		APITimeout:   durationFromSeconds("HR_API_TIMEOUT_SECONDS", 10),
		RedisAddr:    redisAddr,
		KafkaBrokers: brokers,
		SessionTTL:   durationFromSeconds("SESSION_TTL_SECONDS", 12*60*60),
		TemplateGlob: glob,
	}, nil
}

func durationFromSeconds(key string, fallback int) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return time.Duration(fallback) * time.Second
}
