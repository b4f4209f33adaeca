package config_test

import (
	"testing"
	"time"

	"go-storefront/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.Load()
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, 3*time.Second, cfg.ToastTTL)
		assert.Equal(t, 2*time.Second, cfg.CheckoutDelay)
		assert.Empty(t, cfg.RedisAddr)
	})

	t.Run("env_overrides", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("TOAST_TTL_MS", "500")

		cfg := config.Load()
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 500*time.Millisecond, cfg.ToastTTL)
	})

	t.Run("garbage_duration_falls_back", func(t *testing.T) {
		t.Setenv("CHECKOUT_DELAY_MS", "soon")

		cfg := config.Load()
		assert.Equal(t, 2*time.Second, cfg.CheckoutDelay)
	})
}
