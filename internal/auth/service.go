// internal/auth/service.go
// Session gate: who is logged in and whether a request may act as them.

package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/imadgeboyega/vibesnap-backend/internal/common/utils"
	"github.com/imadgeboyega/vibesnap-backend/internal/state"
	"github.com/imadgeboyega/vibesnap-backend/internal/store"
)

// Service defines the session operations
type Service interface {
	Login(ctx context.Context, req *AuthRequest) (*AuthResponse, error)
	Signup(ctx context.Context, req *AuthRequest) (*AuthResponse, error)
	ForgotPassword(ctx context.Context, req *AuthRequest) (*ResetResponse, error)
	Logout(ctx context.Context)

	// CurrentUser returns the session user, if any.
	CurrentUser() (state.User, bool)
	// Authorize checks that token is valid and names the current session user.
	Authorize(token string) (state.User, error)

	// OnLogout registers a hook run after every logout.
	OnLogout(hook func())
}

// Config holds session settings
type Config struct {
	JWTSecret     string
	SessionExpiry time.Duration
	LoginDelay    time.Duration
	ResetDelay    time.Duration
}

type service struct {
	store    *store.Store
	template state.User
	config   *Config
	log      *zap.Logger
	now      func() time.Time

	mu    sync.Mutex
	hooks []func()
}

// NewService creates the session service. template is the record login and signup
// synthesize users from.
func NewService(st *store.Store, template state.User, config *Config, log *zap.Logger) Service {
	return &service{
		store:    st,
		template: template,
		config:   config,
		log:      log,
		now:      time.Now,
	}
}

func (s *service) Login(ctx context.Context, req *AuthRequest) (*AuthResponse, error) {
	if err := wait(ctx, s.config.LoginDelay); err != nil {
		return nil, err
	}

	user := s.synthesize(req, s.template.ID)
	s.store.Update("login", func(a state.AppState) state.AppState {
		return state.SetCurrentUser(a, user)
	})

	s.log.Info("user logged in", zap.String("user_id", user.ID), zap.String("username", user.Username))
	return s.session(user)
}

// Signup logs in a freshly minted user and adds it to the directory.
func (s *service) Signup(ctx context.Context, req *AuthRequest) (*AuthResponse, error) {
	if err := wait(ctx, s.config.LoginDelay); err != nil {
		return nil, err
	}

	user := s.synthesize(req, fmt.Sprintf("user_%d", s.now().UnixMilli()))
	s.store.Update("signup", func(a state.AppState) state.AppState {
		return state.AddUser(state.SetCurrentUser(a, user), user)
	})

	s.log.Info("user signed up", zap.String("user_id", user.ID), zap.String("username", user.Username))
	return s.session(user)
}

func (s *service) ForgotPassword(ctx context.Context, req *AuthRequest) (*ResetResponse, error) {
	if err := wait(ctx, s.config.ResetDelay); err != nil {
		return nil, err
	}
	s.log.Info("password reset requested", zap.String("email", req.Email))
	return &ResetResponse{Email: req.Email, ResetSent: true}, nil
}

func (s *service) Logout(ctx context.Context) {
	s.store.Update("logout", state.ClearCurrentUser)

	s.mu.Lock()
	hooks := append([]func(){}, s.hooks...)
	s.mu.Unlock()

	for _, hook := range hooks {
		hook()
	}
	s.log.Info("user logged out")
}

func (s *service) OnLogout(hook func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hook)
}

func (s *service) CurrentUser() (state.User, bool) {
	current := s.store.Snapshot().CurrentUser
	if current == nil {
		return state.User{}, false
	}
	return *current, true
}

func (s *service) Authorize(token string) (state.User, error) {
	user, ok := s.CurrentUser()
	if !ok {
		return state.User{}, ErrNotLoggedIn
	}

	claims, err := utils.ValidateJWT(token, s.config.JWTSecret)
	if err != nil {
		return state.User{}, err
	}
	if claims.UserID != user.ID {
		return state.User{}, ErrSessionMismatch
	}
	return user, nil
}

// synthesize copies the template, taking username, full name and email from the form when given.
func (s *service) synthesize(req *AuthRequest, id string) state.User {
	user := s.template
	user.ID = id
	if req.Username != "" {
		user.Username = req.Username
	}
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	return user
}

func (s *service) session(user state.User) (*AuthResponse, error) {
	now := s.now()
	token, err := utils.GenerateJWT(user.ID, user.Username, s.config.JWTSecret, s.config.SessionExpiry, now)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		User:      user,
		Token:     token,
		ExpiresAt: now.Add(s.config.SessionExpiry),
	}, nil
}

// wait simulates backend latency.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
