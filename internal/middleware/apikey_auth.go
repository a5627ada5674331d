package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/keys"
	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/models"
)

type contextKey string

const (
	ctxAPIKey    contextKey = "api_key"
	ctxKeyHolder contextKey = "api_key_holder"
)

// keyHolder lets the request-log middleware, which sits outside the
// auth gate, observe the key the gate matched further down the chain.
type keyHolder struct {
	key *models.APIKey
}

// Authenticator is the subset of the key service the gate needs.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.APIKey, error)
}

// APIKeyAuth validates the Bearer token on every request and stores the
// matched key in the request context. All protected endpoints share
// this one implementation; there is deliberately no per-endpoint copy.
func APIKeyAuth(authn Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearer(r)
			k, err := authn.Authenticate(r.Context(), token)
			if err != nil {
				writeAuthError(w, err)
				return
			}
			if h, ok := r.Context().Value(ctxKeyHolder).(*keyHolder); ok {
				h.key = k
			}
			ctx := context.WithValue(r.Context(), ctxAPIKey, k)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// KeyFromCtx returns the authenticated API key or nil.
func KeyFromCtx(ctx context.Context) *models.APIKey {
	k, _ := ctx.Value(ctxAPIKey).(*models.APIKey)
	return k
}

func extractBearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func writeAuthError(w http.ResponseWriter, err error) {
	msg := "invalid api key"
	switch {
	case errors.Is(err, keys.ErrMissingToken):
		msg = "missing or malformed Authorization header"
	case errors.Is(err, keys.ErrKeyRevoked):
		msg = "api key revoked"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + msg + `"}`))
}
