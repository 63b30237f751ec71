// internal/posts/models.go
package posts

import (
	"errors"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
)

// DefaultImageURL is used when a post is composed without an image
const DefaultImageURL = "https://picsum.photos/600/600"

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrFileTooLarge    = errors.New("file size exceeds maximum")
	ErrFileTypeInvalid = errors.New("file type not allowed")
)

// CreatePostRequest is the compose form. Every field is optional.
type CreatePostRequest struct {
	Caption  string `json:"caption"`
	ImageURL string `json:"imageUrl"`
	Location string `json:"location"`
}

// PostView is a post together with its author, as the feed renders it.
// Author is nil when the author is not in the directory.
type PostView struct {
	state.Post
	Author *state.User `json:"author"`
}

// ToggleResponse reports the post after a like or save toggle.
// Post is omitted when the id matched nothing.
type ToggleResponse struct {
	PostID string      `json:"postId"`
	Post   *state.Post `json:"post,omitempty"`
}
