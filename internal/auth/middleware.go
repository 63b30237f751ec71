// internal/auth/middleware.go

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/imadgeboyega/vibesnap-backend/internal/common/utils"
	"github.com/imadgeboyega/vibesnap-backend/internal/state"
)

type contextKey string

const userKey contextKey = "user"

// Middleware provides authentication middleware
type Middleware struct {
	service Service
}

// NewMiddleware creates a new auth middleware
func NewMiddleware(service Service) *Middleware {
	return &Middleware{
		service: service,
	}
}

// Authenticate lets a request through only while someone is logged in and the
// bearer token names that user. The session user is added to the request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := m.extractToken(r)
		if token == "" {
			utils.ErrorResponse(w, "Missing or invalid authorization header", http.StatusUnauthorized)
			return
		}

		user, err := m.service.Authorize(token)
		if err != nil {
			switch err {
			case ErrNotLoggedIn:
				utils.ErrorResponse(w, "Not logged in", http.StatusUnauthorized)
			default:
				utils.ErrorResponse(w, "Invalid or expired token", http.StatusUnauthorized)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// RequireAdmin must run after Authenticate
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			utils.ErrorResponse(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if !user.IsAdmin {
			utils.ErrorResponse(w, "Admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractToken extracts the JWT token from the Authorization header
// Supports "Bearer <token>" format
func (m *Middleware) extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// WithUser stores the session user in ctx
func WithUser(ctx context.Context, user state.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext extracts the session user set by Authenticate
func UserFromContext(ctx context.Context) (state.User, bool) {
	user, ok := ctx.Value(userKey).(state.User)
	return user, ok
}
