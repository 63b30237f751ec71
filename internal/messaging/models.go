// internal/messaging/models.go

package messaging

import (
	"errors"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
)

const (
	// ReplyText is what every counterpart answers
	ReplyText = "That looks great! 👍"

	// DefaultAudioURL stands in for a recorded voice note
	DefaultAudioURL = "mock_audio.mp3"
)

var ErrThreadNotFound = errors.New("thread not found")

// SendMessageRequest carries one message. Type selects which payload field is read.
type SendMessageRequest struct {
	Type     state.MessageKind `json:"type" validate:"required,oneof=text image audio"`
	Text     string            `json:"text" validate:"required_if=Type text"`
	ImageURL string            `json:"imageUrl" validate:"required_if=Type image"`
	AudioURL string            `json:"audioUrl"`
}

// ThreadView is a thread with its counterpart resolved.
// Counterpart is nil when the user is not in the directory.
type ThreadView struct {
	state.ChatThread
	Counterpart *state.User `json:"counterpart"`
}

// SendResponse reports the thread after a send. Thread is omitted when the id matched nothing.
type SendResponse struct {
	ThreadID     string            `json:"threadId"`
	Message      *state.Message    `json:"message,omitempty"`
	Thread       *state.ChatThread `json:"thread,omitempty"`
	ReplyPending bool              `json:"replyPending"`
}
