// internal/reels/models.go

package reels

import "github.com/imadgeboyega/vibesnap-backend/internal/state"

// ReelView is a reel with its author and display counts
type ReelView struct {
	state.Reel
	Author        *state.User `json:"author,omitempty"`
	LikesLabel    string      `json:"likesLabel"`
	CommentsLabel string      `json:"commentsLabel"`
}
