// internal/state/models.go
// Entity types shared by every feature package.
// JSON field names match the browser store format so persisted snapshots stay interchangeable.

package state

// User is a member of the directory. The current session user is also a User.
type User struct {
	ID         string `json:"id" yaml:"id"`
	Username   string `json:"username" yaml:"username"`
	FullName   string `json:"fullName" yaml:"fullName"`
	Avatar     string `json:"avatar" yaml:"avatar"`
	IsVerified bool   `json:"isVerified" yaml:"isVerified"`
	Followers  int    `json:"followers" yaml:"followers"`
	Following  int    `json:"following" yaml:"following"`
	Posts      int    `json:"posts" yaml:"posts"`
	Bio        string `json:"bio" yaml:"bio"`
	Email      string `json:"email,omitempty" yaml:"email"`
	Phone      string `json:"phone,omitempty" yaml:"phone"`
	Website    string `json:"website,omitempty" yaml:"website"`
	Gender     string `json:"gender,omitempty" yaml:"gender"`
	IsAdmin    bool   `json:"isAdmin,omitempty" yaml:"isAdmin"`
	IsBanned   bool   `json:"isBanned,omitempty" yaml:"isBanned"`
}

type PostType string

const (
	PostTypePhoto PostType = "photo"
	PostTypeVideo PostType = "video"
	PostTypeAlbum PostType = "album"
)

type Comment struct {
	ID        string `json:"id" yaml:"id"`
	UserID    string `json:"userId" yaml:"userId"`
	Username  string `json:"username" yaml:"username"`
	Text      string `json:"text" yaml:"text"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Likes     int    `json:"likes" yaml:"likes"`
}

// Post is a feed item. Likes and IsLiked always move together.
type Post struct {
	ID        string    `json:"id" yaml:"id"`
	UserID    string    `json:"userId" yaml:"userId"`
	ImageURL  string    `json:"imageUrl" yaml:"imageUrl"`
	Caption   string    `json:"caption" yaml:"caption"`
	Likes     int       `json:"likes" yaml:"likes"`
	Comments  []Comment `json:"comments" yaml:"comments"`
	Timestamp string    `json:"timestamp" yaml:"timestamp"`
	IsLiked   bool      `json:"isLiked" yaml:"isLiked"`
	IsSaved   bool      `json:"isSaved" yaml:"isSaved"`
	Location  string    `json:"location,omitempty" yaml:"location"`
	Type      PostType  `json:"type" yaml:"type"`
}

type Story struct {
	ID        string `json:"id" yaml:"id"`
	UserID    string `json:"userId" yaml:"userId"`
	ImageURL  string `json:"imageUrl" yaml:"imageUrl"`
	IsViewed  bool   `json:"isViewed" yaml:"isViewed"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

type Reel struct {
	ID         string `json:"id" yaml:"id"`
	UserID     string `json:"userId" yaml:"userId"`
	VideoURL   string `json:"videoUrl" yaml:"videoUrl"`
	Likes      int    `json:"likes" yaml:"likes"`
	Comments   int    `json:"comments" yaml:"comments"`
	Caption    string `json:"caption" yaml:"caption"`
	SongName   string `json:"songName" yaml:"songName"`
	ArtistName string `json:"artistName" yaml:"artistName"`
}

// ChatThread is one conversation with a single counterpart user.
type ChatThread struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	LastMessage string    `json:"lastMessage"`
	UnreadCount int       `json:"unreadCount"`
	Timestamp   string    `json:"timestamp"`
	Messages    []Message `json:"messages"`
}

type NotificationType string

const (
	NotificationLike    NotificationType = "like"
	NotificationComment NotificationType = "comment"
	NotificationFollow  NotificationType = "follow"
	NotificationMention NotificationType = "mention"
)

type Notification struct {
	ID        string           `json:"id" yaml:"id"`
	Type      NotificationType `json:"type" yaml:"type"`
	UserID    string           `json:"userId" yaml:"userId"`
	PostID    string           `json:"postId,omitempty" yaml:"postId"`
	Text      string           `json:"text,omitempty" yaml:"text"`
	Timestamp string           `json:"timestamp" yaml:"timestamp"`
	IsRead    bool             `json:"isRead" yaml:"isRead"`
}

type ReportTarget string

const (
	ReportTargetPost ReportTarget = "post"
	ReportTargetUser ReportTarget = "user"
)

type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

type Report struct {
	ID         string       `json:"id" yaml:"id"`
	TargetID   string       `json:"targetId" yaml:"targetId"`
	TargetType ReportTarget `json:"targetType" yaml:"targetType"`
	Reason     string       `json:"reason" yaml:"reason"`
	Status     ReportStatus `json:"status" yaml:"status"`
	Timestamp  string       `json:"timestamp" yaml:"timestamp"`
	ReportedBy string       `json:"reportedBy" yaml:"reportedBy"`
}
