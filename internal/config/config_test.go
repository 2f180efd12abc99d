package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ENV", "")
	t.Setenv("ADMIN_TOKEN", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("PORT", "")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":4001", cfg.HTTPAddr)
	assert.Equal(t, defaultAdminToken, cfg.Admin.Token)
	assert.Equal(t, "Africa/Lagos", cfg.Booking.Location.String())
	assert.Equal(t, 60, cfg.Booking.WindowDays)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.False(t, cfg.SMTP.Enabled())
	assert.Equal(t, 3, cfg.Notify.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.Notify.RetryBase)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("PORT", "9000")
	t.Setenv("BOOKING_WINDOW_DAYS", "30")
	t.Setenv("BUSINESS_TZ", "UTC")
	t.Setenv("CONTACT_EMAIL", "owner@example.com")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("METRICS_ENABLED", "off")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, 30, cfg.Booking.WindowDays)
	assert.Equal(t, time.UTC, cfg.Booking.Location)
	assert.True(t, cfg.SMTP.Enabled())
	assert.Equal(t, "owner@example.com", cfg.SMTP.From)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.False(t, cfg.MetricsEnabled)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"bad tz":       {"BUSINESS_TZ": "Mars/Olympus"},
		"bad window":   {"BOOKING_WINDOW_DAYS": "0"},
		"window text":  {"BOOKING_WINDOW_DAYS": "sixty"},
		"bad duration": {"SHUTDOWN_TIMEOUT": "soon"},
		"no workers":   {"NOTIFY_WORKERS": "0"},
		"bad limit":    {"RATE_LIMIT_PER_MINUTE": "-1"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestFromEnv_ProductionRequiresRealToken(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	t.Setenv("ADMIN_TOKEN", "")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "ADMIN_TOKEN must be set")

	t.Setenv("ADMIN_TOKEN", "short")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "at least 16")

	t.Setenv("ADMIN_TOKEN", "a-long-enough-admin-secret")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}
