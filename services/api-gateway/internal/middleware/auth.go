package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/taskbridgehq/taskbridge-api/services/api-gateway/internal/payload"
	authpbv1 "github.com/taskbridgehq/taskbridge-api/shared/protos/auth/v1"
)

type identityContextKey struct{}

// Identity is the authenticated caller resolved from an access token.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// IdentityFromContext returns the identity stored by RequireAuth.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityContextKey{}).(*Identity)
	return identity, ok
}

// RequireAuth rejects requests without a valid access token. Validation is
// delegated to the auth service, so revoked sessions are caught immediately.
func RequireAuth(authClient authpbv1.AuthServiceClient, logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				writeUnauthorized(w, "missing or malformed authorization header")
				return
			}

			resp, err := authClient.ValidateToken(r.Context(), &authpbv1.ValidateTokenRequest{
				AccessToken: parts[1],
			})
			if err != nil {
				logger.Debug().Err(err).Msg("access token validation failed")
				writeUnauthorized(w, "invalid access token")
				return
			}

			identity := &Identity{
				UserID: resp.GetUserId(),
				Email:  resp.GetEmail(),
				Role:   resp.GetRole(),
			}

			ctx := context.WithValue(r.Context(), identityContextKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(payload.ErrorResponse{Error: message})
}
