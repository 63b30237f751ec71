// internal/notification/models.go

package notifications

import "github.com/imadgeboyega/vibesnap-backend/internal/state"

// TodayCount is how many of the newest notifications are grouped under "Today".
const TodayCount = 2

// Item is a notification ready to display
type Item struct {
	state.Notification
	Actor state.User `json:"actor"`
	// Text is the sentence shown after the actor's username.
	Text string `json:"text"`
	// Thumbnail is the post preview; follow notifications show a follow button instead.
	Thumbnail    string `json:"thumbnail,omitempty"`
	FollowButton bool   `json:"followButton"`
}

// Sections is the notification list as the page groups it
type Sections struct {
	Today    []Item `json:"today"`
	ThisWeek []Item `json:"thisWeek"`
	Unread   int    `json:"unread"`
}

type MarkReadResponse struct {
	ID           string              `json:"id,omitempty"`
	Notification *state.Notification `json:"notification,omitempty"`
	Unread       int                 `json:"unread"`
}
