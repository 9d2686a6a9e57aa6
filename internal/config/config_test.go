package config

import (
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("LENS_TIMEOUT", "")
	t.Setenv("S3_BUCKET", "")

	cfg := Load()

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "https://api.lens.dev", cfg.LensAPIURL)
	assert.Equal(t, 10*time.Second, cfg.LensTimeout)
	assert.Equal(t, "https://lenster.xyz/u/", cfg.ProfileBaseURL)
	assert.False(t, cfg.SnapshotsEnabled())
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoadTrustedProxies(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 127.0.0.1,not-an-ip, ::1")

	cfg := Load()

	assert.Equal(t, []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("127.0.0.1/32"),
		netip.MustParsePrefix("::1/128"),
	}, cfg.TrustedProxies)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("LENS_TIMEOUT", "soon")
	t.Setenv("FOLLOWERS_PER_PAGE", "many")

	cfg := Load()

	assert.Equal(t, 10*time.Second, cfg.LensTimeout)
	assert.Equal(t, 25, cfg.FollowersPerPage)
}

func TestSanitizedDropsSecrets(t *testing.T) {
	cfg := &Config{
		AppName:     "Lens Cards",
		JWTSecret:   "secret",
		S3SecretKey: "s3-secret",
		S3Bucket:    "cards",
	}

	s := cfg.Sanitized()

	assert.Equal(t, "Lens Cards", s.AppName)
	assert.Empty(t, s.JWTSecret)
	assert.Empty(t, s.S3SecretKey)
	assert.Empty(t, s.S3Bucket)
}
