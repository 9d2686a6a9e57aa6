package middleware

import "net/http"

// Chain applies multiple middleware in order (first to last).
//
// Example:
//
//	handler := Chain(mux,
//	    Config(cfg),       // Executes first
//	    NonceMiddleware,   // Executes second
//	    Metrics,           // Executes last, sees the matched route pattern
//	)
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
