// internal/profile/upload.go

package profile

import (
	"context"
	"fmt"
	"io"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
)

// Uploader stores an image and returns its public URL
type Uploader interface {
	Upload(file io.Reader, filename, contentType string, size int64) (string, error)
}

// UploadAvatar stores a new profile photo and saves it on the session user
func (s *service) UploadAvatar(ctx context.Context, current state.User, file io.Reader, filename, contentType string, size int64) (state.User, error) {
	url, err := s.uploader.Upload(file, filename, contentType, size)
	if err != nil {
		return state.User{}, fmt.Errorf("failed to upload avatar: %w", err)
	}

	updated := current
	updated.Avatar = url
	s.store.Update("updateProfile", func(a state.AppState) state.AppState {
		updated = keepProtected(a, updated)
		return state.UpdateProfile(a, updated)
	})
	return updated, nil
}
