package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
	"github.com/imadgeboyega/vibesnap-backend/internal/store"
)

var template = state.User{ID: "me", Username: "vibesnap_admin", FullName: "VibeSnap Admin", Email: "admin@vibesnap.com", IsAdmin: true}

func newTestService(t *testing.T) (*service, *store.Store) {
	t.Helper()
	st := store.New(state.AppState{
		Users: []state.User{{ID: "u1", Username: "alex_wanderer"}, template},
	})
	svc := NewService(st, template, &Config{JWTSecret: "test-secret", SessionExpiry: time.Hour}, zap.NewNop()).(*service)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return svc, st
}

func TestLogin_UsesTemplateIdentity(t *testing.T) {
	svc, st := newTestService(t)

	resp, err := svc.Login(context.Background(), &AuthRequest{View: ViewLogin, Email: "someone@example.com", Password: "anything"})
	require.NoError(t, err)

	assert.Equal(t, "me", resp.User.ID)
	assert.Equal(t, "vibesnap_admin", resp.User.Username)
	assert.Equal(t, "someone@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)

	current := st.Snapshot().CurrentUser
	require.NotNil(t, current)
	assert.Equal(t, resp.User, *current)
	assert.Len(t, st.Snapshot().Users, 2, "login does not touch the directory")
}

func TestSignup_MintsUserAndAddsToDirectory(t *testing.T) {
	svc, st := newTestService(t)

	resp, err := svc.Signup(context.Background(), &AuthRequest{View: ViewSignup, Username: "newbie", FullName: "New Bie"})
	require.NoError(t, err)

	assert.Equal(t, "user_1700000000000", resp.User.ID)
	assert.Equal(t, "newbie", resp.User.Username)
	assert.Equal(t, "New Bie", resp.User.FullName)
	assert.Equal(t, template.Email, resp.User.Email)

	dir, ok := st.Snapshot().FindUser(resp.User.ID)
	require.True(t, ok)
	assert.Equal(t, resp.User, dir)
}

func TestLogin_HonoursCancellation(t *testing.T) {
	svc, st := newTestService(t)
	svc.config.LoginDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, &AuthRequest{View: ViewLogin})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, st.Snapshot().LoggedIn())
}

func TestForgotPassword(t *testing.T) {
	svc, st := newTestService(t)

	resp, err := svc.ForgotPassword(context.Background(), &AuthRequest{View: ViewForgot, Email: "a@b.c"})
	require.NoError(t, err)
	assert.True(t, resp.ResetSent)
	assert.False(t, st.Snapshot().LoggedIn())
}

func TestAuthorize(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Authorize("whatever")
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	first, err := svc.Login(context.Background(), &AuthRequest{View: ViewLogin})
	require.NoError(t, err)

	user, err := svc.Authorize(first.Token)
	require.NoError(t, err)
	assert.Equal(t, "me", user.ID)

	second, err := svc.Signup(context.Background(), &AuthRequest{View: ViewSignup})
	require.NoError(t, err)

	_, err = svc.Authorize(first.Token)
	assert.ErrorIs(t, err, ErrSessionMismatch, "the old token names a different user")
	_, err = svc.Authorize(second.Token)
	assert.NoError(t, err)
}

func TestLogout_RunsHooks(t *testing.T) {
	svc, st := newTestService(t)
	_, err := svc.Login(context.Background(), &AuthRequest{View: ViewLogin})
	require.NoError(t, err)

	calls := 0
	svc.OnLogout(func() { calls++ })
	svc.Logout(context.Background())

	assert.Equal(t, 1, calls)
	assert.False(t, st.Snapshot().LoggedIn())
}

func TestHandlers(t *testing.T) {
	svc, _ := newTestService(t)
	mw := NewMiddleware(svc)
	router := mux.NewRouter()
	NewHandler(svc, mw).RegisterRoutes(router)

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(mw.Authenticate, mw.RequireAdmin)
	admin.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	do := func(method, path, body, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusUnauthorized, do("GET", "/api/auth/me", "", "").Code)
	assert.Equal(t, http.StatusBadRequest, do("POST", "/api/auth/submit", `{"view":"register"}`, "").Code)
	assert.Equal(t, http.StatusBadRequest, do("POST", "/api/auth/signin", `{`, "").Code)

	rec := do("POST", "/api/auth/signin", `{"email":"x@y.z","password":"p"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp, err := svc.Login(context.Background(), &AuthRequest{View: ViewLogin})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, do("GET", "/api/auth/me", "", resp.Token).Code)
	assert.Equal(t, http.StatusNoContent, do("GET", "/admin/ping", "", resp.Token).Code)

	signup, err := svc.Signup(context.Background(), &AuthRequest{View: ViewSignup})
	require.NoError(t, err)
	svc.store.Update("demote", func(a state.AppState) state.AppState {
		u := *a.CurrentUser
		u.IsAdmin = false
		return state.UpdateProfile(a, u)
	})
	assert.Equal(t, http.StatusForbidden, do("GET", "/admin/ping", "", signup.Token).Code)

	assert.Equal(t, http.StatusOK, do("POST", "/api/auth/logout", "", signup.Token).Code)
	assert.Equal(t, http.StatusUnauthorized, do("GET", "/api/auth/me", "", signup.Token).Code)
}
