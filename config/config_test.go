package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 10000.0, cfg.Journal.DefaultInitialBalance)
	assert.Equal(t, "USD", cfg.Journal.DefaultCurrency)
	assert.Equal(t, "daily", cfg.Journal.DefaultPeriod)
	assert.Equal(t, 15*time.Minute, cfg.Calendar.Freshness)
	assert.Equal(t, "@every 15m", cfg.Calendar.RefreshSpec)
	assert.Equal(t, time.Minute, cfg.Calendar.RefreshTimeout)
	assert.NotEmpty(t, cfg.Calendar.UserAgents)
	assert.Equal(t, "X-User-ID", cfg.API.UserHeader)
	assert.Equal(t, 8080, cfg.API.Port)
}
