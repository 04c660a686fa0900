package httpx

import (
	"crypto/subtle"
	"net/http"
)

const apiKeyHeader = "X-API-KEY"

// APIKeyMiddleware gates mutating endpoints behind a shared secret. The
// X-API-KEY header must equal the configured secret; otherwise the request
// is rejected before the handler runs. Read endpoints are never wrapped.
func APIKeyMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(apiKeyHeader)
			if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
				JSONError(w, http.StatusUnauthorized, "No autorizado")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
