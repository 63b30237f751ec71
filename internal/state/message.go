// internal/state/message.go

package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// MessageKind is the discriminator of a message payload.
type MessageKind string

const (
	MessageText  MessageKind = "text"
	MessageImage MessageKind = "image"
	MessageAudio MessageKind = "audio"
)

// Payload is the content of a message. Exactly one concrete payload exists per message,
// so the kind and the populated field can never disagree.
type Payload interface {
	Kind() MessageKind
	// Preview is the thread list label for this payload.
	Preview() string
}

type TextPayload struct {
	Text string
}

func (TextPayload) Kind() MessageKind { return MessageText }
func (p TextPayload) Preview() string { return p.Text }

type ImagePayload struct {
	ImageURL string
}

func (ImagePayload) Kind() MessageKind { return MessageImage }
func (ImagePayload) Preview() string   { return "Sent an image" }

type AudioPayload struct {
	AudioURL string
}

func (AudioPayload) Kind() MessageKind { return MessageAudio }
func (AudioPayload) Preview() string   { return "Sent an audio" }

var ErrInvalidPayload = errors.New("message payload does not match its type")

// Message is a chat message carrying one payload.
type Message struct {
	ID        string
	SenderID  string
	Payload   Payload
	Timestamp time.Time
	IsOwn     bool
}

// Kind returns the payload discriminator, or "" for a message without payload.
func (m Message) Kind() MessageKind {
	if m.Payload == nil {
		return ""
	}
	return m.Payload.Kind()
}

type messageJSON struct {
	ID        string      `json:"id"`
	SenderID  string      `json:"senderId"`
	Text      *string     `json:"text,omitempty"`
	ImageURL  *string     `json:"imageUrl,omitempty"`
	AudioURL  *string     `json:"audioUrl,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	IsOwn     bool        `json:"isOwn"`
	Type      MessageKind `json:"type"`
}

func (m Message) MarshalJSON() ([]byte, error) {
	out := messageJSON{
		ID:        m.ID,
		SenderID:  m.SenderID,
		Timestamp: m.Timestamp,
		IsOwn:     m.IsOwn,
	}

	switch p := m.Payload.(type) {
	case TextPayload:
		out.Type, out.Text = MessageText, &p.Text
	case ImagePayload:
		out.Type, out.ImageURL = MessageImage, &p.ImageURL
	case AudioPayload:
		out.Type, out.AudioURL = MessageAudio, &p.AudioURL
	default:
		return nil, fmt.Errorf("message %s: %w", m.ID, ErrInvalidPayload)
	}

	return json.Marshal(out)
}

func (m *Message) UnmarshalJSON(data []byte) error {
	var in messageJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	populated := 0
	for _, f := range []*string{in.Text, in.ImageURL, in.AudioURL} {
		if f != nil {
			populated++
		}
	}
	if populated != 1 {
		return fmt.Errorf("message %s: %w", in.ID, ErrInvalidPayload)
	}

	var payload Payload
	switch {
	case in.Type == MessageText && in.Text != nil:
		payload = TextPayload{Text: *in.Text}
	case in.Type == MessageImage && in.ImageURL != nil:
		payload = ImagePayload{ImageURL: *in.ImageURL}
	case in.Type == MessageAudio && in.AudioURL != nil:
		payload = AudioPayload{AudioURL: *in.AudioURL}
	default:
		return fmt.Errorf("message %s: %w", in.ID, ErrInvalidPayload)
	}

	*m = Message{
		ID:        in.ID,
		SenderID:  in.SenderID,
		Payload:   payload,
		Timestamp: in.Timestamp,
		IsOwn:     in.IsOwn,
	}
	return nil
}
