package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/empirepm/ecc-backend/internal/config"
	"github.com/empirepm/ecc-backend/pkg/ctxutil"
)

// AdminToken returns middleware that gates admin endpoints behind a shared
// token. The x-admin-token header must match cfg.Token; when
// cfg.BearerToken is set an Authorization bearer token is required as
// well. Comparisons are constant-time. The optional x-actor header is
// stored in the context for audit attribution.
func AdminToken(cfg config.AdminConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("x-admin-token")
			if !tokenEqual(token, cfg.Token) {
				unauthorized(w)
				return
			}

			if cfg.BearerToken != "" {
				bearer := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
				if !tokenEqual(bearer, cfg.BearerToken) {
					unauthorized(w)
					return
				}
			}

			ctx := r.Context()
			if actor := r.Header.Get("x-actor"); actor != "" {
				ctx = ctxutil.WithActor(ctx, actor)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenEqual(got, want string) bool {
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"unauthorized","message":"invalid admin token"}`))
}
