package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/marketplace-order-service/internal/entities"
	"github.com/SergeyBogomolovv/marketplace-order-service/pkg/utils"
)

type SessionVerifier interface {
	VerifySession(ctx context.Context, credential string) (entities.Buyer, error)
}

type buyerKey struct{}

// Auth rejects requests without a valid bearer token or session cookie and
// stores the resolved buyer in the request context.
func Auth(logger *slog.Logger, verifier SessionVerifier, cookieName string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential := credentialFrom(r, cookieName)
			if credential == "" {
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			buyer, err := verifier.VerifySession(r.Context(), credential)
			if err != nil {
				logger.Debug("session rejected", slog.String("path", r.URL.Path), slog.Any("error", err))
				utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithBuyer(r.Context(), buyer)))
		})
	}
}

func BuyerFromContext(ctx context.Context) (entities.Buyer, bool) {
	buyer, ok := ctx.Value(buyerKey{}).(entities.Buyer)
	return buyer, ok
}

// WithBuyer returns a copy of ctx carrying buyer.
func WithBuyer(ctx context.Context, buyer entities.Buyer) context.Context {
	return context.WithValue(ctx, buyerKey{}, buyer)
}

func credentialFrom(r *http.Request, cookieName string) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}
