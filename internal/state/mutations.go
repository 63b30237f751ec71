// internal/state/mutations.go
// Pure operations over AppState. Each returns a new state and leaves its input untouched.
// An id that matches nothing yields the input state unchanged.

package state

import "time"

func ToggleLike(s AppState, postID string) AppState {
	s.Posts = replaceWhere(s.Posts, func(p Post) bool { return p.ID == postID }, func(p Post) Post {
		p.IsLiked = !p.IsLiked
		if p.IsLiked {
			p.Likes++
		} else {
			p.Likes--
		}
		return p
	})
	return s
}

func ToggleSave(s AppState, postID string) AppState {
	s.Posts = replaceWhere(s.Posts, func(p Post) bool { return p.ID == postID }, func(p Post) Post {
		p.IsSaved = !p.IsSaved
		return p
	})
	return s
}

// PrependPost puts post at the head of the feed.
func PrependPost(s AppState, post Post) AppState {
	posts := make([]Post, 0, len(s.Posts)+1)
	posts = append(posts, post)
	s.Posts = append(posts, s.Posts...)
	return s
}

// UpdateProfile replaces the session user and the directory entry with the same id.
func UpdateProfile(s AppState, user User) AppState {
	current := user
	s.CurrentUser = &current
	s.Users = replaceWhere(s.Users, func(u User) bool { return u.ID == user.ID }, func(User) User {
		return user
	})
	return s
}

func ToggleBan(s AppState, userID string) AppState {
	s.Users = replaceWhere(s.Users, func(u User) bool { return u.ID == userID }, func(u User) User {
		u.IsBanned = !u.IsBanned
		return u
	})
	return s
}

// DeletePost removes the post. Notifications and reports pointing at it are kept.
func DeletePost(s AppState, postID string) AppState {
	if _, ok := s.FindPost(postID); !ok {
		return s
	}
	posts := make([]Post, 0, len(s.Posts))
	for _, p := range s.Posts {
		if p.ID != postID {
			posts = append(posts, p)
		}
	}
	s.Posts = posts
	return s
}

// AppendMessage adds msg to the thread and refreshes its preview and timestamp label.
func AppendMessage(s AppState, threadID string, msg Message) AppState {
	s.Threads = replaceWhere(s.Threads, func(t ChatThread) bool { return t.ID == threadID }, func(t ChatThread) ChatThread {
		messages := make([]Message, 0, len(t.Messages)+1)
		messages = append(messages, t.Messages...)
		t.Messages = append(messages, msg)
		t.LastMessage = ""
		if msg.Payload != nil {
			t.LastMessage = msg.Payload.Preview()
		}
		t.Timestamp = JustNow
		return t
	})
	return s
}

func MarkThreadRead(s AppState, threadID string) AppState {
	s.Threads = replaceWhere(s.Threads, func(t ChatThread) bool { return t.ID == threadID && t.UnreadCount != 0 }, func(t ChatThread) ChatThread {
		t.UnreadCount = 0
		return t
	})
	return s
}

func SetCurrentUser(s AppState, user User) AppState {
	s.CurrentUser = &user
	return s
}

func ClearCurrentUser(s AppState) AppState {
	s.CurrentUser = nil
	return s
}

// AddUser appends user to the directory, replacing an entry with the same id.
func AddUser(s AppState, user User) AppState {
	if _, ok := s.FindUser(user.ID); ok {
		s.Users = replaceWhere(s.Users, func(u User) bool { return u.ID == user.ID }, func(User) User { return user })
		return s
	}
	users := make([]User, 0, len(s.Users)+1)
	users = append(users, s.Users...)
	s.Users = append(users, user)
	return s
}

func MarkStoryViewed(s AppState, storyID string) AppState {
	s.Stories = replaceWhere(s.Stories, func(st Story) bool { return st.ID == storyID && !st.IsViewed }, func(st Story) Story {
		st.IsViewed = true
		return st
	})
	return s
}

func MarkNotificationRead(s AppState, id string) AppState {
	s.Notifications = replaceWhere(s.Notifications, func(n Notification) bool { return n.ID == id && !n.IsRead }, func(n Notification) Notification {
		n.IsRead = true
		return n
	})
	return s
}

func MarkAllNotificationsRead(s AppState) AppState {
	s.Notifications = replaceWhere(s.Notifications, func(n Notification) bool { return !n.IsRead }, func(n Notification) Notification {
		n.IsRead = true
		return n
	})
	return s
}

// SetReportStatus moves a report to status
func SetReportStatus(s AppState, reportID string, status ReportStatus) AppState {
	s.Reports = replaceWhere(s.Reports, func(r Report) bool { return r.ID == reportID && r.Status != status }, func(r Report) Report {
		r.Status = status
		return r
	})
	return s
}

// NewTextMessage builds a text message sent at the given time.
func NewTextMessage(id, senderID, text string, at time.Time, own bool) Message {
	return Message{ID: id, SenderID: senderID, Payload: TextPayload{Text: text}, Timestamp: at, IsOwn: own}
}

// replaceWhere copies items, applying update to every element match accepts.
// When nothing matches the original slice is returned as is.
func replaceWhere[T any](items []T, match func(T) bool, update func(T) T) []T {
	var out []T
	for i, item := range items {
		if !match(item) {
			continue
		}
		if out == nil {
			out = make([]T, len(items))
			copy(out, items)
		}
		out[i] = update(item)
	}
	if out == nil {
		return items
	}
	return out
}
