// internal/profile/models.go

package profile

import (
	"errors"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
)

var ErrUserNotFound = errors.New("user not found")

// Profile is a directory user with the posts shown on their grid
type Profile struct {
	User      state.User   `json:"user"`
	Posts     []state.Post `json:"posts"`
	PostCount int          `json:"postCount"`
}

// UpdateProfileRequest is the whole edited record. Fields left empty are stored empty.
type UpdateProfileRequest struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	Gender   string `json:"gender"`
}
