package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/empirepm/ecc-backend/internal/config"
)

// RequireOrigin returns middleware that rejects requests whose Origin is
// not on the configured allow-list. When the Origin header is absent the
// Referer is used instead, reduced to its scheme://host form. Requests
// carrying neither header are rejected unless the allow-list is "*".
func RequireOrigin(cfg config.CORSConfig) Middleware {
	origins := strings.Split(cfg.AllowedOrigins, ",")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := requestOrigin(r)
			if !isAllowedOrigin(origin, origins) {
				forbidden(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestOrigin(r *http.Request) string {
	if origin := r.Header.Get("Origin"); origin != "" {
		return origin
	}
	referer := r.Header.Get("Referer")
	if referer == "" {
		return ""
	}
	u, err := url.Parse(referer)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

func forbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	w.Write([]byte(`{"error":"forbidden","message":"origin not allowed"}`))
}
