package middleware

import (
	"net/http"
	"strings"
)

// SecurityHeaders sets a nonce based CSP. Cards are meant to be embedded, so
// framing is allowed from any origin and images may come from any https host.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Security-Policy", contentSecurityPolicy(GetNonce(r.Context())))
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

func contentSecurityPolicy(nonce string) string {
	withNonce := "'self'"
	if nonce != "" {
		withNonce += " 'nonce-" + nonce + "'"
	}
	return strings.Join([]string{
		"default-src 'self'",
		"img-src 'self' https: data:",
		"style-src-elem " + withNonce,
		"style-src-attr 'unsafe-inline'",
		"script-src " + withNonce,
		"object-src 'none'",
		"base-uri 'none'",
		"frame-ancestors *",
	}, "; ")
}
