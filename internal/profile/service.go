// internal/profile/service.go

package profile

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
	"github.com/imadgeboyega/vibesnap-backend/internal/store"
)

// Service defines profile operations
type Service interface {
	GetMyProfile(ctx context.Context, current state.User) *Profile
	GetUserProfile(ctx context.Context, userID string) (*Profile, error)
	UpdateProfile(ctx context.Context, current state.User, req *UpdateProfileRequest) state.User
	UploadAvatar(ctx context.Context, current state.User, file io.Reader, filename, contentType string, size int64) (state.User, error)
	SearchUsers(ctx context.Context, term string) []state.User
}

type service struct {
	store    *store.Store
	uploader Uploader
	log      *zap.Logger
}

func NewService(st *store.Store, uploader Uploader, log *zap.Logger) Service {
	return &service{
		store:    st,
		uploader: uploader,
		log:      log,
	}
}

// GetMyProfile returns the session user with their own posts
func (s *service) GetMyProfile(_ context.Context, current state.User) *Profile {
	posts := s.store.Snapshot().PostsByUser(current.ID)
	return &Profile{User: current, Posts: posts, PostCount: len(posts)}
}

func (s *service) GetUserProfile(_ context.Context, userID string) (*Profile, error) {
	snap := s.store.Snapshot()
	user, ok := snap.FindUser(userID)
	if !ok {
		return nil, ErrUserNotFound
	}
	posts := snap.PostsByUser(userID)
	return &Profile{User: user, Posts: posts, PostCount: len(posts)}, nil
}

// UpdateProfile replaces the editable fields of the session user's record.
// Identity, counters and the admin and ban flags are kept from the current record.
func (s *service) UpdateProfile(_ context.Context, current state.User, req *UpdateProfileRequest) state.User {
	updated := current
	updated.Username = req.Username
	updated.FullName = req.FullName
	updated.Avatar = req.Avatar
	updated.Bio = req.Bio
	updated.Email = req.Email
	updated.Phone = req.Phone
	updated.Website = req.Website
	updated.Gender = req.Gender

	s.store.Update("updateProfile", func(a state.AppState) state.AppState {
		updated = keepProtected(a, updated)
		return state.UpdateProfile(a, updated)
	})

	s.log.Info("profile updated", zap.String("user_id", updated.ID))
	return updated
}

// keepProtected copies the fields only the directory may change onto u.
func keepProtected(a state.AppState, u state.User) state.User {
	stored, ok := a.FindUser(u.ID)
	if !ok {
		return u
	}
	u.IsAdmin = stored.IsAdmin
	u.IsBanned = stored.IsBanned
	u.Followers = stored.Followers
	u.Following = stored.Following
	u.Posts = stored.Posts
	return u
}

func (s *service) SearchUsers(_ context.Context, term string) []state.User {
	return s.store.Snapshot().SearchUsers(term)
}
