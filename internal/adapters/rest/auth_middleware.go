package rest

import (
	"context"
	"net/http"
	"strings"

	authapi_client "housing-insights-service/internal/adapters/authapi"
	"housing-insights-service/internal/contextkeys"
	"housing-insights-service/internal/core/port"

	"github.com/google/uuid"
)

type contextKey string

const userIDKey = contextKey("userID")

// AuthMiddleware validates the bearer token with the auth service and puts
// the resolved user id into the request context. A trusted X-User-ID header
// short-circuits the round trip when the API gateway already authenticated
// the request.
type AuthMiddleware struct {
	authClient *authapi_client.Client
}

func NewAuthMiddleware(authClient *authapi_client.Client) *AuthMiddleware {
	return &AuthMiddleware{authClient: authClient}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := contextkeys.LoggerFromContext(r.Context())

		if userIDStr := r.Header.Get("X-User-ID"); userIDStr != "" {
			userID, err := uuid.Parse(userIDStr)
			if err != nil {
				WriteJSONError(w, http.StatusUnauthorized, "Invalid X-User-ID header format")
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		authHeader := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Authorization header is missing or malformed")
			return
		}

		claims, err := m.authClient.ValidateToken(r.Context(), token)
		if err != nil {
			logger.Warn("Token validation failed", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			logger.Error("Auth service returned a malformed user id", err, port.Fields{"user_id": claims.UserID})
			WriteJSONError(w, http.StatusUnauthorized, "Invalid user identity")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromContext pulls the authenticated user id set by the middleware.
func userIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}
