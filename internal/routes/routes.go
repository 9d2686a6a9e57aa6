package routes

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/templui/lenscard/internal/app"
	"github.com/templui/lenscard/internal/handler"
	"github.com/templui/lenscard/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	card := handler.NewCardHandler(app.ProfileService, app.CardOptions, app.DefaultTheme)
	docs := handler.NewDocsHandler(app.DocsService)
	snapshots := handler.NewSnapshotHandler(app.SnapshotService, app.DefaultTheme)
	health := handler.NewHealthHandler(app.DB)

	mux := http.NewServeMux()

	// Guide
	mux.HandleFunc("GET /{$}", docs.ShowDocs)
	mux.HandleFunc("GET /docs/{slug}", docs.ShowDocs)

	// Cards
	mux.HandleFunc("GET /card", card.Fragment)
	mux.HandleFunc("GET /embed", card.Embed)
	mux.HandleFunc("GET /embed/{path...}", card.Embed)

	// Snapshots (publishing is token protected and rate limited)
	publishLimiter := middleware.NewRateLimiter(10, time.Minute)
	requireToken := middleware.RequireToken(app.TokenService)
	mux.HandleFunc("POST /snapshots", publishLimiter.Limit(requireToken(snapshots.Publish)))
	mux.HandleFunc("GET /snapshots", snapshots.List)

	// Operations
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", health.Healthz)

	// 404
	mux.HandleFunc("/{path...}", handler.NotFound)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.ClientIP(app.Cfg.TrustedProxies), // Before RequestLogging and rate limits
		middleware.NonceMiddleware, // Must run before SecurityHeaders
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.Metrics, // Last, so it sees r.Pattern set by the mux
	)
}
