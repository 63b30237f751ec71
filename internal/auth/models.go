// internal/auth/models.go
// Request and response shapes for the simulated sign-in flow.
// No credential is ever checked: any email and password are accepted.

package auth

import (
	"errors"
	"time"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
)

var (
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrSessionMismatch = errors.New("token does not belong to the current user")
)

// View is the auth screen a request comes from
type View string

const (
	ViewLogin  View = "login"
	ViewSignup View = "signup"
	ViewForgot View = "forgot"
)

// AuthRequest is the single form behind login, signup and password reset.
// Only View is checked; every other field is optional and accepted as is.
type AuthRequest struct {
	View     View   `json:"view" validate:"required,oneof=login signup forgot"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// AuthResponse is returned by login and signup
type AuthResponse struct {
	User      state.User `json:"user"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

// ResetResponse is returned by the forgot-password flow. Nothing is actually sent.
type ResetResponse struct {
	Email     string `json:"email,omitempty"`
	ResetSent bool   `json:"resetSent"`
}
