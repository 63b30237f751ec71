// internal/posts/service.go
package posts

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
	"github.com/imadgeboyega/vibesnap-backend/internal/store"
)

type Service struct {
	store    *store.Store
	uploader Uploader
	log      *zap.Logger
	newID    func() string
}

func NewService(st *store.Store, uploader Uploader, log *zap.Logger) *Service {
	return &Service{
		store:    st,
		uploader: uploader,
		log:      log,
		newID:    func() string { return "p_" + uuid.New().String() },
	}
}

// Feed returns every post, newest first, with its author
func (s *Service) Feed() []PostView {
	snap := s.store.Snapshot()
	return views(snap, snap.Posts)
}

// UserPosts returns the posts written by userID, as the profile grid shows them
func (s *Service) UserPosts(userID string) []PostView {
	snap := s.store.Snapshot()
	return views(snap, snap.PostsByUser(userID))
}

func (s *Service) GetPost(id string) (PostView, error) {
	snap := s.store.Snapshot()
	post, ok := snap.FindPost(id)
	if !ok {
		return PostView{}, ErrPostNotFound
	}
	return view(snap, post), nil
}

// ToggleLike flips the like flag. The post is nil when id matched nothing.
func (s *Service) ToggleLike(id string) *state.Post {
	snap := s.store.Update("toggleLike", func(a state.AppState) state.AppState {
		return state.ToggleLike(a, id)
	})
	return lookup(snap, id)
}

func (s *Service) ToggleSave(id string) *state.Post {
	snap := s.store.Update("toggleSave", func(a state.AppState) state.AppState {
		return state.ToggleSave(a, id)
	})
	return lookup(snap, id)
}

// Create puts a new photo post by author at the head of the feed
func (s *Service) Create(_ context.Context, author state.User, req *CreatePostRequest) state.Post {
	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = DefaultImageURL
	}

	post := state.Post{
		ID:        s.newID(),
		UserID:    author.ID,
		ImageURL:  imageURL,
		Caption:   req.Caption,
		Likes:     0,
		Comments:  []state.Comment{},
		Timestamp: state.JustNow,
		Location:  req.Location,
		Type:      state.PostTypePhoto,
	}

	s.store.Update("createPost", func(a state.AppState) state.AppState {
		return state.PrependPost(a, post)
	})

	s.log.Info("post created", zap.String("post_id", post.ID), zap.String("user_id", author.ID))
	return post
}

// UploadImage stores an uploaded image and returns its URL
func (s *Service) UploadImage(file io.Reader, filename, contentType string, size int64) (string, error) {
	url, err := s.uploader.Upload(file, filename, contentType, size)
	if err != nil {
		s.log.Warn("image upload failed", zap.String("filename", filename), zap.Error(err))
		return "", err
	}
	return url, nil
}

// ExploreTile is one image of the explore grid. Tall tiles span two rows.
type ExploreTile struct {
	ImageURL string `json:"imageUrl"`
	Tall     bool   `json:"tall"`
}

// Explore returns the fixed discovery grid
func (s *Service) Explore() []ExploreTile {
	tiles := make([]ExploreTile, exploreSize)
	for i := range tiles {
		height := 400
		if i%3 == 0 {
			height = 600
		}
		tiles[i] = ExploreTile{
			ImageURL: fmt.Sprintf("https://picsum.photos/seed/explore%d/400/%d", i, height),
			Tall:     i%3 == 0,
		}
	}
	return tiles
}

const exploreSize = 20

func lookup(snap state.AppState, id string) *state.Post {
	post, ok := snap.FindPost(id)
	if !ok {
		return nil
	}
	return &post
}

func views(snap state.AppState, posts []state.Post) []PostView {
	out := make([]PostView, 0, len(posts))
	for _, p := range posts {
		out = append(out, view(snap, p))
	}
	return out
}

func view(snap state.AppState, post state.Post) PostView {
	v := PostView{Post: post}
	if author, ok := snap.FindUser(post.UserID); ok {
		v.Author = &author
	}
	return v
}
