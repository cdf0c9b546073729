package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv    string
	Host      string
	ShopID    string
	ShopPass  string
	SiteID    string
	SitePass  string
	Locale    string
	Timeout   time.Duration
	RateLimit float64
	RateBurst int
}

const defaultTimeout = 30 * time.Second

// LoadConfig reads the gateway settings from .env (when present) and the environment.
// Credentials are not checked here; each client validates the ones it needs.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   os.Getenv("APP_ENV"),
		Host:     os.Getenv("GMO_HOST"),
		ShopID:   os.Getenv("GMO_SHOP_ID"),
		ShopPass: os.Getenv("GMO_SHOP_PASS"),
		SiteID:   os.Getenv("GMO_SITE_ID"),
		SitePass: os.Getenv("GMO_SITE_PASS"),
		Locale:   os.Getenv("GMO_LOCALE"),
		Timeout:  defaultTimeout,
	}

	if cfg.Host == "" {
		return nil, fmt.Errorf("GMO_HOST is not set")
	}

	if v := os.Getenv("GMO_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid GMO_TIMEOUT %q: %w", v, err)
		}
		cfg.Timeout = d
	}

	if v := os.Getenv("GMO_RATE_LIMIT"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid GMO_RATE_LIMIT %q: %w", v, err)
		}
		cfg.RateLimit = r
		cfg.RateBurst = 1
	}

	if v := os.Getenv("GMO_RATE_BURST"); v != "" {
		b, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid GMO_RATE_BURST %q: %w", v, err)
		}
		if b < 1 {
			return nil, fmt.Errorf("invalid GMO_RATE_BURST %q: must be at least 1", v)
		}
		cfg.RateBurst = b
	}

	return cfg, nil
}
