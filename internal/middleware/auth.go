package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/templui/lenscard/internal/ctxkeys"
)

// TokenVerifier returns the subject of a valid publish token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// RequireToken rejects requests without a valid "Authorization: Bearer" publish token
// and stores the token subject in the context.
func RequireToken(tokens TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				unauthorized(w)
				return
			}

			subject, err := tokens.Verify(strings.TrimSpace(token))
			if err != nil {
				slog.WarnContext(r.Context(), "rejected publish token", "path", r.URL.Path, "error", err)
				unauthorized(w)
				return
			}

			ctx := ctxkeys.WithPublisher(r.Context(), subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="snapshots"`)
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}
