package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds every request context so a hung database call cannot block
// a request forever. The deadline propagates into each statement through
// gorm's WithContext.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
