package ctxkeys

import (
	"context"

	"github.com/templui/lenscard/internal/config"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	ConfigKey    contextKey = "config"
	PublisherKey contextKey = "publisher"
	ClientIPKey  contextKey = "client_ip"
)

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

// Publisher is the subject of the verified publish token, "" for anonymous requests.
func Publisher(ctx context.Context) string {
	publisher, _ := ctx.Value(PublisherKey).(string)
	return publisher
}

func WithPublisher(ctx context.Context, publisher string) context.Context {
	return context.WithValue(ctx, PublisherKey, publisher)
}

// ClientIP is the caller address resolved by the client IP middleware, "" when unset.
func ClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(ClientIPKey).(string)
	return ip
}

func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ClientIPKey, ip)
}
