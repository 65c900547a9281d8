package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string

	HTTPAddr    string
	DatabaseURL string

	// RabbitMQ
	RabbitURL      string
	RabbitExchange string

	// Redis & Caching
	RedisURL        string
	RedisKeyPrefix  string
	CacheTTLDetails time.Duration

	// Rate Limiting
	RLEnabled bool
	RLLimit   int
	RLWindow  time.Duration

	LogLevel  string
	LogFormat string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration

	PageDefaultSize int
	PageMaxSize     int

	// PublicBaseURL, when set, is the prefix of every link href.
	PublicBaseURL string
	// TrustProxyHeaders lets X-Forwarded-Proto/Host shape link hrefs.
	TrustProxyHeaders bool
}

func (c *Config) IsDev() bool { return c.AppEnv == "dev" }

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")

	cfg.RabbitURL = getEnv("RABBIT_URL", "")
	cfg.RabbitExchange = getEnv("RABBIT_EXCHANGE", "events")

	cfg.RedisURL = getEnv("REDIS_URL", "")
	cfg.RedisKeyPrefix = getEnv("REDIS_KEY_PREFIX", "event-rest-api:")
	cfg.CacheTTLDetails = getDuration("CACHE_TTL_DETAILS", 5*time.Minute)

	// 100 requests per minute per IP
	cfg.RLEnabled = getEnv("RL_ENABLED", "true") == "true"
	cfg.RLLimit = getIntEnv("RL_IP_LIMIT", 100)
	cfg.RLWindow = getDuration("RL_IP_WINDOW", 1*time.Minute)

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "console")

	cfg.HTTPReadTimeout = getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	cfg.HTTPWriteTimeout = getDuration("HTTP_WRITE_TIMEOUT", 20*time.Second)
	cfg.HTTPIdleTimeout = getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second)

	cfg.PageDefaultSize = getIntEnv("PAGE_DEFAULT_SIZE", 20)
	cfg.PageMaxSize = getIntEnv("PAGE_MAX_SIZE", 100)

	cfg.PublicBaseURL = strings.TrimRight(getEnv("PUBLIC_BASE_URL", ""), "/")
	cfg.TrustProxyHeaders = getEnv("TRUST_PROXY_HEADERS", "false") == "true"

	// dev may run on the in-memory store
	if cfg.DatabaseURL == "" && !cfg.IsDev() {
		return nil, fmt.Errorf("missing DATABASE_URL (required when APP_ENV != dev)")
	}
	if cfg.PageDefaultSize <= 0 || cfg.PageMaxSize <= 0 {
		return nil, fmt.Errorf("PAGE_DEFAULT_SIZE and PAGE_MAX_SIZE must be positive")
	}
	if cfg.PageDefaultSize > cfg.PageMaxSize {
		return nil, fmt.Errorf("PAGE_DEFAULT_SIZE (%d) exceeds PAGE_MAX_SIZE (%d)", cfg.PageDefaultSize, cfg.PageMaxSize)
	}
	if cfg.RLEnabled && cfg.RLLimit <= 0 {
		return nil, fmt.Errorf("RL_IP_LIMIT must be positive when rate limiting is enabled")
	}

	return cfg, nil
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getIntEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
