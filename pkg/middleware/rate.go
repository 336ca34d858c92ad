package middleware

import (
	"net"
	"net/http"
	"time"

	"github.com/terry1921/stickerstore/pkg/cache"
	"github.com/terry1921/stickerstore/pkg/logger"
	"github.com/terry1921/stickerstore/pkg/response"
)

// RateLimit limits each client IP to max requests per window, counting in
// Redis so the limit holds across replicas. When Redis is unreachable the
// limiter fails open; availability beats throttling here.
func RateLimit(max int64, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			count, err := cache.Incr(r.Context(), "rate:"+ip, window)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("rate limiter unavailable", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if count > max {
				response.Error(w, http.StatusTooManyRequests, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
