package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"estoquepecas/internal/pkg/cache"
	"estoquepecas/internal/pkg/logger"
)

// RateLimiter limita as requisições por IP em janelas fixas usando o cache.Client.
// Falha do cache não bloqueia a requisição. O 429 sai por writeError.
func RateLimiter(client cache.Client, limit int, window time.Duration, writeError func(w http.ResponseWriter, r *http.Request, status int, msg string), log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			count, err := client.Incr(r.Context(), "rate-limit:"+ip, window)
			if err != nil {
				log.Warn("Rate limiter indisponível.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			remaining := limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if int(count) > limit {
				log.Warn("Limite de requisições excedido.", map[string]interface{}{"ip": ip, "count": count})
				writeError(w, r, http.StatusTooManyRequests, "Limite de requisições excedido. Tente novamente em instantes.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
