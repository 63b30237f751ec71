package profile

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/imadgeboyega/vibesnap-backend/internal/auth"
	"github.com/imadgeboyega/vibesnap-backend/internal/state"
	"github.com/imadgeboyega/vibesnap-backend/internal/store"
)

var me = state.User{ID: "me", Username: "vibesnap_admin", FullName: "VibeSnap Admin", Followers: 1250, IsAdmin: true}

type stubUploader struct {
	url string
	err error
}

func (s stubUploader) Upload(io.Reader, string, string, int64) (string, error) {
	return s.url, s.err
}

func newTestService(uploader Uploader) (Service, *store.Store) {
	st := store.New(state.AppState{
		CurrentUser: &me,
		Users:       []state.User{{ID: "u1", Username: "alex_wanderer"}, {ID: "u2", Username: "tech_insider"}, me},
		Posts: []state.Post{
			{ID: "p1", UserID: "u1"},
			{ID: "p9", UserID: "me"},
		},
	})
	return NewService(st, uploader, zap.NewNop()), st
}

func TestUpdateProfile_SessionAndDirectoryMatch(t *testing.T) {
	svc, st := newTestService(stubUploader{})

	updated := svc.UpdateProfile(context.Background(), me, &UpdateProfileRequest{
		Username: "renamed",
		FullName: "New Name",
		Bio:      "hello",
		Website:  "https://vibesnap.com",
	})

	assert.Equal(t, "me", updated.ID)
	assert.Equal(t, 1250, updated.Followers)
	assert.True(t, updated.IsAdmin)

	snap := st.Snapshot()
	require.NotNil(t, snap.CurrentUser)
	assert.Equal(t, updated, *snap.CurrentUser)
	dir, ok := snap.FindUser("me")
	require.True(t, ok)
	assert.Equal(t, updated, dir)
}

func TestUpdateProfile_KeepsDirectoryFlags(t *testing.T) {
	tests := []struct {
		name string
		edit func(*testing.T, Service) state.User
	}{
		{"profile edit", func(_ *testing.T, svc Service) state.User {
			return svc.UpdateProfile(context.Background(), me, &UpdateProfileRequest{Username: "b"})
		}},
		{"avatar upload", func(t *testing.T, svc Service) state.User {
			u, err := svc.UploadAvatar(context.Background(), me, strings.NewReader("img"), "a.png", "image/png", 3)
			require.NoError(t, err)
			return u
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st := newTestService(stubUploader{url: "/uploads/a.png"})
			st.Update("toggleBan", func(a state.AppState) state.AppState {
				return state.ToggleBan(a, "me")
			})

			updated := tt.edit(t, svc)
			assert.True(t, updated.IsBanned)

			stored, ok := st.Snapshot().FindUser("me")
			require.True(t, ok)
			assert.True(t, stored.IsBanned)
			assert.True(t, stored.IsAdmin)
			assert.Equal(t, 1250, stored.Followers)
		})
	}
}

func TestGetProfiles(t *testing.T) {
	svc, _ := newTestService(stubUploader{})

	mine := svc.GetMyProfile(context.Background(), me)
	assert.Equal(t, 1, mine.PostCount)
	assert.Equal(t, "p9", mine.Posts[0].ID)

	other, err := svc.GetUserProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "alex_wanderer", other.User.Username)

	_, err = svc.GetUserProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSearchUsers(t *testing.T) {
	svc, _ := newTestService(stubUploader{})

	tests := []struct {
		term string
		want int
	}{
		{"", 3},
		{"ALEX", 1},
		{"_", 3},
		{"nobody", 0},
	}
	for _, tt := range tests {
		assert.Len(t, svc.SearchUsers(context.Background(), tt.term), tt.want, tt.term)
	}
}

func TestUploadAvatar(t *testing.T) {
	svc, st := newTestService(stubUploader{url: "http://localhost:8080/uploads/a.png"})

	updated, err := svc.UploadAvatar(context.Background(), me, strings.NewReader("img"), "a.png", "image/png", 3)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/a.png", updated.Avatar)
	assert.Equal(t, updated.Avatar, st.Snapshot().CurrentUser.Avatar)

	failing, st := newTestService(stubUploader{err: errors.New("disk full")})
	_, err = failing.UploadAvatar(context.Background(), me, strings.NewReader("img"), "a.png", "image/png", 3)
	assert.Error(t, err)
	assert.Empty(t, st.Snapshot().CurrentUser.Avatar)
}

func TestUpdateProfileHandler(t *testing.T) {
	svc, st := newTestService(stubUploader{})
	h := NewHandler(svc, 1<<20)

	req := httptest.NewRequest("PUT", "/api/v1/profile", strings.NewReader(`{"username":"renamed","bio":"b"}`))
	req = req.WithContext(auth.WithUser(req.Context(), me))
	rec := httptest.NewRecorder()
	h.UpdateProfile(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "renamed", st.Snapshot().CurrentUser.Username)
}
