package middleware

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

const msgForbidden = "forbidden access"

// RequireOwner allows the request only when the authenticated email equals
// the URL parameter param exactly. Must run after Auth.
func RequireOwner(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			target, err := url.PathUnescape(chi.URLParam(r, param))
			if err != nil || !IsOwner(claims.Email, target) {
				writeJSONError(w, http.StatusForbidden, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsOwner reports whether the authenticated email may act on target.
// The comparison is exact; an empty claim never matches.
func IsOwner(claimEmail, target string) bool {
	return claimEmail != "" && claimEmail == target
}
