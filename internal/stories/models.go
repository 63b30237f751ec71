// internal/stories/models.go

package stories

import (
	"errors"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
)

var ErrStoryNotFound = errors.New("story not found")

const (
	// ProgressStep is how far one tick moves the progress bar.
	ProgressStep = 2
	// ProgressFull is the progress at which the viewer moves on.
	ProgressFull = 100
)

// StoryView is a rail entry with its author resolved
type StoryView struct {
	state.Story
	Author *state.User `json:"author,omitempty"`
}

// Frame is what the player shows after a tick or a navigation
type Frame struct {
	Index    int         `json:"index"`
	Story    state.Story `json:"story"`
	Progress int         `json:"progress"`
	Done     bool        `json:"done"`
}
