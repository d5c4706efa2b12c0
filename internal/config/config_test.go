package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/campaign-service/internal/config"
)

// clearEnv blanks out every variable the assertions depend on so the test
// sees the built-in defaults regardless of the ambient environment. The
// config helpers treat an empty value as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME",
		"AUTH_ACCESS_TOKEN_TTL_MINUTES",
		"AUTH_REFRESH_TOKEN_TTL_DAYS",
		"AUTH_EXEMPT_PREFIXES",
		"AUTH_CAMPAIGN_BROWSE_PATTERN",
		"AUTH_CAMPAIGN_PROGRESS_PATTERN",
		"REDIS_DB",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "campaign-service", cfg.App.Name)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, 14*24*time.Hour, cfg.Auth.RefreshTokenTTL())
	assert.Contains(t, cfg.Auth.ExemptPrefixes, "/api/auth")
	assert.Contains(t, cfg.Auth.ExemptPrefixes, "/favicon.ico")
	assert.NotEmpty(t, cfg.Auth.CampaignBrowsePattern)
	assert.NotEmpty(t, cfg.Auth.CampaignProgressPattern)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTH_ACCESS_TOKEN_TTL_MINUTES", "5")
	t.Setenv("AUTH_REFRESH_TOKEN_TTL_DAYS", "1")
	t.Setenv("AUTH_EXEMPT_PREFIXES", " /public , /assets ")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, 24*time.Hour, cfg.Auth.RefreshTokenTTL())
	assert.Equal(t, []string{"/public", "/assets"}, cfg.Auth.ExemptPrefixes)
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := config.Load()
	assert.Error(t, err)
}
