package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("PORT", "9090")
	t.Setenv("SCENARIO_CACHE_TTL", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://desk.example.com, http://localhost:3000,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.ScenarioCacheTTL)
	assert.Equal(t, []string{"https://desk.example.com", "http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "PRICE_LESS_TRADE", cfg.TaxBasis)
	assert.Equal(t, "2", cfg.FinanceReservePoints.String())
	assert.Equal(t, "7", cfg.DefaultTaxRate.String())
	assert.Equal(t, "120-M", cfg.RateLimit)
}

func TestLoadConfig_InvalidReservePoints(t *testing.T) {
	viper.Reset()
	t.Setenv("FINANCE_RESERVE_POINTS", "-1")

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "FINANCE_RESERVE_POINTS")
}

func TestLoadConfig_NonPositiveCacheTTL(t *testing.T) {
	viper.Reset()
	t.Setenv("SCENARIO_CACHE_TTL", "0s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.ScenarioCacheTTL)
}
