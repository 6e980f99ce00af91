package middleware

import (
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// APIKeyHeader carries the service key checked by APIKey.
const APIKeyHeader = "X-API-Key"

// APIKey rejects requests whose X-API-Key does not match the bcrypt hash.
// An empty hash disables the check.
func APIKey(hash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if hash == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(APIKeyHeader)
			if key == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"detail": "invalid or missing API key"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
