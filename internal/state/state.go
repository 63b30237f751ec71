// internal/state/state.go
// AppState is the whole entity store. Slices inside an AppState are never mutated
// in place: operations build new slices, so earlier snapshots stay valid.

package state

import "strings"

// JustNow is the timestamp label given to freshly created posts and updated threads.
const JustNow = "Just now"

type AppState struct {
	CurrentUser   *User          `json:"currentUser,omitempty"`
	Posts         []Post         `json:"posts"`
	Users         []User         `json:"users"`
	Stories       []Story        `json:"stories"`
	Reels         []Reel         `json:"reels"`
	Threads       []ChatThread   `json:"threads"`
	Notifications []Notification `json:"notifications"`
	Reports       []Report       `json:"reports"`
}

// LoggedIn reports whether a session user is present.
func (s AppState) LoggedIn() bool {
	return s.CurrentUser != nil
}

func (s AppState) FindPost(id string) (Post, bool) {
	return find(s.Posts, func(p Post) bool { return p.ID == id })
}

func (s AppState) FindUser(id string) (User, bool) {
	return find(s.Users, func(u User) bool { return u.ID == id })
}

func (s AppState) FindThread(id string) (ChatThread, bool) {
	return find(s.Threads, func(t ChatThread) bool { return t.ID == id })
}

func (s AppState) FindStory(id string) (Story, bool) {
	return find(s.Stories, func(st Story) bool { return st.ID == id })
}

// PostsByUser returns the posts authored by userID in feed order.
func (s AppState) PostsByUser(userID string) []Post {
	out := []Post{}
	for _, p := range s.Posts {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

func (s AppState) PendingReports() []Report {
	out := []Report{}
	for _, r := range s.Reports {
		if r.Status == ReportPending {
			out = append(out, r)
		}
	}
	return out
}

// SearchUsers matches a case-insensitive substring of the username.
// An empty term matches every user.
func (s AppState) SearchUsers(term string) []User {
	term = strings.ToLower(term)
	out := []User{}
	for _, u := range s.Users {
		if strings.Contains(strings.ToLower(u.Username), term) {
			out = append(out, u)
		}
	}
	return out
}

func find[T any](items []T, match func(T) bool) (T, bool) {
	for _, item := range items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}
