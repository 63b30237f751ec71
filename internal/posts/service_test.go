package posts

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/imadgeboyega/vibesnap-backend/internal/auth"
	"github.com/imadgeboyega/vibesnap-backend/internal/state"
	"github.com/imadgeboyega/vibesnap-backend/internal/store"
)

var me = state.User{ID: "me", Username: "vibesnap_admin"}

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st := store.New(state.AppState{
		CurrentUser: &me,
		Users:       []state.User{{ID: "u1", Username: "alex_wanderer"}, me},
		Posts: []state.Post{
			{ID: "p1", UserID: "u1", Likes: 1240, Comments: []state.Comment{}},
			{ID: "p2", UserID: "u2", Likes: 3500, IsLiked: true, IsSaved: true, Comments: []state.Comment{}},
		},
	})
	uploader, err := NewUploadService(UploadConfig{LocalUploadDir: t.TempDir(), BaseURL: "http://localhost:8080"})
	require.NoError(t, err)
	svc := NewService(st, uploader, zap.NewNop())
	svc.newID = func() string { return "p_fixed" }
	return svc, st
}

func TestFeed_ResolvesAuthors(t *testing.T) {
	svc, _ := newTestService(t)

	feed := svc.Feed()
	require.Len(t, feed, 2)
	require.NotNil(t, feed[0].Author)
	assert.Equal(t, "alex_wanderer", feed[0].Author.Username)
	assert.Nil(t, feed[1].Author, "u2 is not in the directory")
}

func TestToggleLike(t *testing.T) {
	svc, _ := newTestService(t)

	post := svc.ToggleLike("p2")
	require.NotNil(t, post)
	assert.Equal(t, 3499, post.Likes)
	assert.False(t, post.IsLiked)

	assert.Nil(t, svc.ToggleLike("missing"))
}

func TestCreate(t *testing.T) {
	svc, st := newTestService(t)

	post := svc.Create(context.Background(), me, &CreatePostRequest{Caption: "sunset"})

	assert.Equal(t, "p_fixed", post.ID)
	assert.Equal(t, "me", post.UserID)
	assert.Equal(t, DefaultImageURL, post.ImageURL)
	assert.Equal(t, state.JustNow, post.Timestamp)
	assert.Equal(t, state.PostTypePhoto, post.Type)
	assert.Zero(t, post.Likes)
	assert.NotNil(t, post.Comments)
	assert.Equal(t, post, st.Snapshot().Posts[0])

	mine := svc.UserPosts("me")
	require.Len(t, mine, 1)
	assert.Equal(t, "p_fixed", mine[0].ID)
}

func TestExplore(t *testing.T) {
	svc, _ := newTestService(t)

	tiles := svc.Explore()
	require.Len(t, tiles, 20)
	assert.Equal(t, ExploreTile{ImageURL: "https://picsum.photos/seed/explore0/400/600", Tall: true}, tiles[0])
	assert.Equal(t, ExploreTile{ImageURL: "https://picsum.photos/seed/explore1/400/400"}, tiles[1])
}

func TestUploadService_Local(t *testing.T) {
	dir := t.TempDir()
	us, err := NewUploadService(UploadConfig{LocalUploadDir: dir, BaseURL: "http://localhost:8080", MaxSize: 1024})
	require.NoError(t, err)
	us.now = func() time.Time { return time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC) }

	url, err := us.Upload(strings.NewReader("png-bytes"), "Photo.PNG", "image/png", 9)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/posts/2024/02/03/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	name := url[strings.LastIndex(url, "/")+1:]
	data, err := os.ReadFile(filepath.Join(dir, "posts", "2024", "02", "03", name))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	_, err = us.Upload(strings.NewReader("x"), "clip.mp4", "video/mp4", 1)
	assert.ErrorIs(t, err, ErrFileTypeInvalid)
	_, err = us.Upload(strings.NewReader("x"), "big.jpg", "image/jpeg", 4096)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

type mockS3 struct {
	s3iface.S3API
	mock.Mock
}

func (m *mockS3) PutObject(in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
	args := m.Called(aws.StringValue(in.Bucket), aws.StringValue(in.ContentType))
	return &s3.PutObjectOutput{}, args.Error(0)
}

func TestUploadService_S3(t *testing.T) {
	client := new(mockS3)
	client.On("PutObject", "vibesnap-uploads", "image/jpeg").Return(nil)

	us := &UploadService{
		s3Client:   client,
		bucketName: "vibesnap-uploads",
		useS3:      true,
		maxSize:    1 << 20,
		now:        func() time.Time { return time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC) },
	}

	url, err := us.Upload(strings.NewReader("jpeg"), "a.jpg", "image/jpeg", 4)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://vibesnap-uploads.s3.amazonaws.com/posts/2024/02/03/"))
	client.AssertExpectations(t)
}

func TestHandlers(t *testing.T) {
	svc, st := newTestService(t)
	h := NewHandler(svc, 1<<20)

	router := mux.NewRouter()
	router.HandleFunc("/posts", h.CreatePost).Methods("POST")
	router.HandleFunc("/posts/{id}", h.GetPost).Methods("GET")
	router.HandleFunc("/posts/{id}/like", h.LikePost).Methods("POST")

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		req = req.WithContext(auth.WithUser(req.Context(), me))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := serve(httptest.NewRequest("POST", "/posts/missing/like", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"postId":"missing"}}`, rec.Body.String())

	rec = serve(httptest.NewRequest("GET", "/posts/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req := httptest.NewRequest("POST", "/posts", strings.NewReader(`{"caption":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = serve(req)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "hello", st.Snapshot().Posts[0].Caption)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("caption", "uploaded"))
	part, err := form.CreateFormFile("image", "shot.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req = httptest.NewRequest("POST", "/posts", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec = serve(req)
	require.Equal(t, http.StatusCreated, rec.Code)
	head := st.Snapshot().Posts[0]
	assert.Equal(t, "uploaded", head.Caption)
	assert.Contains(t, head.ImageURL, "/uploads/posts/")
}
