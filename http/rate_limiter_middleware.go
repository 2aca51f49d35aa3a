package http

import (
	"log/slog"
	"net"
	"net/http"

	"github.com/google/uuid"

	"mortgage-calc/logger"
)

const requestIDHeader = "X-Request-ID"

func RateLimitMiddleware(
	limiter Limiter,
	next http.Handler,
) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !limiter.Allow(r.Context(), ip) {
			logger.CtxWarn(r.Context(), "rate limit exceeded", slog.String("client", ip))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequestIDMiddleware reuses an incoming X-Request-ID or generates one, and
// stores it in the request context for logging.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, requestID)
		ctx := logger.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
