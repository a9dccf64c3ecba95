package middleware

import (
	"context"
	"net/http"

	"github.com/vfg2006/ads-manager-api/internal/domain"
)

func withClaims(r *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(r.Context(), ContextKeyUser, claims)
}
