package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/cache"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

// RateLimit limita as requisições por usuário numa janela fixa usando
// contadores no Redis. Sem usuário autenticado a chave é o IP.
// Falhas do Redis liberam a requisição.
func RateLimit(c cache.Cache, scope string, limit int, window time.Duration) func(http.Handler) http.Handler {
	if window < time.Second {
		window = time.Minute
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			subject := r.RemoteAddr
			if claims, ok := ClaimsFromContext(r.Context()); ok {
				subject = strconv.Itoa(claims.UserID)
			}

			key := fmt.Sprintf("ratelimit:%s:%s:%d", scope, subject, time.Now().Unix()/int64(window.Seconds()))
			count, err := c.Incr(r.Context(), key, window)
			if err != nil {
				logrus.WithError(err).WithField("scope", scope).Warn("Erro no rate limit, liberando requisição")
				next.ServeHTTP(w, r)
				return
			}

			remaining := int64(limit) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(limit) {
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				apiErrors.WriteError(w, apiErrors.ErrRateLimitExceeded, "Muitas requisições, tente novamente em instantes", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
