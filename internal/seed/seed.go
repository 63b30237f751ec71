// internal/seed/seed.go
// Static fixtures the entity store starts from.

package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

type threadFixture struct {
	ID          string           `yaml:"id"`
	UserID      string           `yaml:"userId"`
	LastMessage string           `yaml:"lastMessage"`
	UnreadCount int              `yaml:"unreadCount"`
	Timestamp   string           `yaml:"timestamp"`
	Messages    []messageFixture `yaml:"messages"`
}

// Message timestamps are stored as offsets from load time.
type messageFixture struct {
	ID       string `yaml:"id"`
	SenderID string `yaml:"senderId"`
	Text     string `yaml:"text"`
	Offset   string `yaml:"offset"`
}

// Fixtures mirrors fixtures.yaml.
type Fixtures struct {
	CurrentUser   state.User           `yaml:"currentUser"`
	Users         []state.User         `yaml:"users"`
	Posts         []state.Post         `yaml:"posts"`
	Reels         []state.Reel         `yaml:"reels"`
	Notifications []state.Notification `yaml:"notifications"`
	Threads       []threadFixture      `yaml:"threads"`
	Reports       []state.Report       `yaml:"reports"`
}

// Parse decodes fixtures from YAML.
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return &f, nil
}

// Default returns the embedded fixtures.
func Default() *Fixtures {
	f, err := Parse(fixturesYAML)
	if err != nil {
		panic(err)
	}
	return f
}

// CurrentUserTemplate is the record login and signup synthesize users from.
func CurrentUserTemplate() state.User {
	return Default().CurrentUser
}

// State builds the initial entity store. Nobody is logged in; the directory holds
// the fixture users followed by the current-user template.
func (f *Fixtures) State(now time.Time) (state.AppState, error) {
	s := state.AppState{
		Users:         append(append([]state.User{}, f.Users...), f.CurrentUser),
		Posts:         make([]state.Post, len(f.Posts)),
		Reels:         append([]state.Reel{}, f.Reels...),
		Notifications: append([]state.Notification{}, f.Notifications...),
		Reports:       append([]state.Report{}, f.Reports...),
	}

	for i, p := range f.Posts {
		if p.Comments == nil {
			p.Comments = []state.Comment{}
		}
		s.Posts[i] = p
	}

	// One story per fixture user, newest first.
	for idx, u := range f.Users {
		s.Stories = append(s.Stories, state.Story{
			ID:        fmt.Sprintf("s%d", idx),
			UserID:    u.ID,
			ImageURL:  fmt.Sprintf("https://picsum.photos/seed/story%d/400/800", idx),
			Timestamp: fmt.Sprintf("%dh", idx+2),
		})
	}

	for _, tf := range f.Threads {
		thread := state.ChatThread{
			ID:          tf.ID,
			UserID:      tf.UserID,
			LastMessage: tf.LastMessage,
			UnreadCount: tf.UnreadCount,
			Timestamp:   tf.Timestamp,
			Messages:    make([]state.Message, 0, len(tf.Messages)),
		}
		for _, mf := range tf.Messages {
			offset, err := time.ParseDuration(mf.Offset)
			if err != nil {
				return state.AppState{}, fmt.Errorf("thread %s message %s: invalid offset %q: %w", tf.ID, mf.ID, mf.Offset, err)
			}
			own := mf.SenderID == f.CurrentUser.ID
			thread.Messages = append(thread.Messages, state.NewTextMessage(mf.ID, mf.SenderID, mf.Text, now.Add(offset), own))
		}
		s.Threads = append(s.Threads, thread)
	}

	return s, nil
}

// Load builds the initial state from the embedded fixtures.
func Load(now time.Time) (state.AppState, error) {
	return Default().State(now)
}
