package config

import (
	"log/slog"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	AppURL  string
	Port    string

	// Proxies whose X-Forwarded-For / X-Real-IP headers are believed. Empty trusts none.
	TrustedProxies []netip.Prefix

	// Lens
	LensAPIURL       string
	LensTimeout      time.Duration
	FollowersPerPage int
	IPFSGateway      string
	ProfileBaseURL   string // Click-through target, the handle is appended
	DefaultTheme     string

	// Database (snapshot registry, default: sqlite)
	DBDriver     string
	DBConnection string

	// Security (snapshot publishing)
	JWTSecret string
	JWTExpiry time.Duration

	// Observability (optional)
	SentryDSN string

	// Storage (S3-compatible, optional: snapshot publishing is disabled without a bucket)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // Optional: for S3-compatible services (MinIO, R2, etc.)
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "Lens Cards"),
		AppEnv:  envString("APP_ENV", "development"),
		AppURL:  envString("APP_URL", "http://localhost:8090"),
		Port:    envString("PORT", "8090"),

		TrustedProxies: envPrefixes("TRUSTED_PROXIES"),

		// Lens
		LensAPIURL:       envString("LENS_API_URL", "https://api.lens.dev"),
		LensTimeout:      envDuration("LENS_TIMEOUT", 10*time.Second),
		FollowersPerPage: envInt("FOLLOWERS_PER_PAGE", 25),
		IPFSGateway:      envString("IPFS_GATEWAY", "https://cloudflare-ipfs.com/ipfs/"),
		ProfileBaseURL:   envString("PROFILE_BASE_URL", "https://lenster.xyz/u/"),
		DefaultTheme:     envString("DEFAULT_THEME", "default"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/lenscard.db?_pragma=journal_mode(WAL)"),

		// Security
		JWTSecret: envString("JWT_SECRET", ""),
		JWTExpiry: envDuration("JWT_EXPIRY", 720*time.Hour), // 30 days

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage
		S3Region:    envString("S3_REGION", "us-east-1"),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""),
	}

	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures publishing is not left open with an empty signing key.
func validateProduction(cfg *Config) {
	if cfg.SnapshotsEnabled() && cfg.JWTSecret == "" {
		slog.Error("production snapshot publishing requires JWT_SECRET",
			"hint", "unset S3_BUCKET to disable snapshot publishing")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

// envPrefixes reads a comma-separated list of CIDRs or bare IPs, skipping invalid entries.
func envPrefixes(key string) []netip.Prefix {
	var prefixes []netip.Prefix
	for _, v := range strings.Split(os.Getenv(key), ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		prefix, err := ParsePrefix(v)
		if err != nil {
			slog.Warn("config invalid proxy address, skipping", "key", key, "value", v)
			continue
		}
		prefixes = append(prefixes, prefix)
	}
	return prefixes
}

// ParsePrefix accepts "10.0.0.0/8" or a single address such as "127.0.0.1".
func ParsePrefix(s string) (netip.Prefix, error) {
	if strings.Contains(s, "/") {
		prefix, err := netip.ParsePrefix(s)
		if err != nil {
			return netip.Prefix{}, err
		}
		return prefix.Masked(), nil
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, err
	}
	addr = addr.Unmap()
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// SnapshotsEnabled reports whether a bucket is configured for snapshot publishing.
func (c *Config) SnapshotsEnabled() bool {
	return c.S3Bucket != ""
}

// Sanitized returns a copy of the config with only public/safe fields.
// Safe to expose in ctx and templates.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:        c.AppName,
		AppEnv:         c.AppEnv,
		AppURL:         c.AppURL,
		Port:           c.Port,
		IPFSGateway:    c.IPFSGateway,
		ProfileBaseURL: c.ProfileBaseURL,
		DefaultTheme:   c.DefaultTheme,
		S3Endpoint:     c.S3Endpoint,
	}
}
