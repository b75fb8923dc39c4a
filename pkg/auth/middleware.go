package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/talentbank/pkg/utils"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

const (
	SessionCookie  = "session"
	AdminKeyHeader = "X-Admin-Key"
)

//go:generate mockgen -source=middleware.go -destination=mock_middleware.go -package=auth
type UserChecker interface {
	Exists(ctx context.Context, userID int) (bool, error)
}

// UserID returns the authenticated user id put in the context by AuthMiddleware.
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(UserIDKey).(int)
	return id, ok
}

func sessionToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// AuthMiddleware resolves the session token to a user that still exists.
func AuthMiddleware(jwtService JWTServiceInterface, users UserChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r)
			if token == "" {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			exists, err := users.Exists(r.Context(), claims.UserID)
			if err != nil {
				zap.L().Error("can't check session user", zap.Error(err))
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if !exists {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware admits requests whose X-Admin-Key matches keyHash. With no hash configured it refuses everything.
func AdminMiddleware(hashService HashServiceInterface, keyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if keyHash == "" {
				utils.RespondWithError(w, http.StatusForbidden, "Admin access disabled")
				return
			}
			key := r.Header.Get(AdminKeyHeader)
			if key == "" || !hashService.Compare(keyHash, key) {
				utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
