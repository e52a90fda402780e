package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"club-elections/pkg/logger"
)

// ContextKey represents keys used in request context.
type ContextKey string

// RequestIDContextKey is the key for the request ID in context.
const RequestIDContextKey ContextKey = "request_id"

// RequestID adds a unique request ID to each request and its response.
func RequestID(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := generateRequestID()

			ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)
			r = r.WithContext(ctx)

			w.Header().Set("X-Request-ID", requestID)

			log.WithFields(map[string]interface{}{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
			}).Debug("request received")

			next.ServeHTTP(w, r)
		})
	}
}

func generateRequestID() string {
	return fmt.Sprintf("%d-%d", time.Now().Unix(), time.Now().Nanosecond())
}
