// Package config provides runtime configuration for the storefront.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	ProductAPIURL string
	RedisAddr     string
	DataDir       string
	ToastTTL      time.Duration
	CheckoutDelay time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durenvms(key string, defMs int) time.Duration {
	v := getenv(key, "")
	if v == "" {
		return time.Duration(defMs) * time.Millisecond
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		return time.Duration(defMs) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

// Load collects configuration from the environment with defaults. The
// checkout delay mirrors the original storefront's simulated 2s payment.
func Load() Config {
	return Config{
		Port:          getenv("PORT", "3000"),
		ProductAPIURL: getenv("PRODUCT_API_URL", "http://localhost:5000/api"),
		RedisAddr:     getenv("REDIS_ADDR", ""),
		DataDir:       getenv("DATA_DIR", "./data"),
		ToastTTL:      durenvms("TOAST_TTL_MS", 3000),
		CheckoutDelay: durenvms("CHECKOUT_DELAY_MS", 2000),
	}
}
