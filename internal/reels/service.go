// internal/reels/service.go

package reels

import (
	"strconv"

	"github.com/imadgeboyega/vibesnap-backend/internal/store"
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// List returns every reel in feed order
func (s *Service) List() []ReelView {
	snap := s.store.Snapshot()
	out := make([]ReelView, 0, len(snap.Reels))
	for _, r := range snap.Reels {
		v := ReelView{
			Reel:          r,
			LikesLabel:    FormatCount(r.Likes),
			CommentsLabel: FormatCount(r.Comments),
		}
		if u, ok := snap.FindUser(r.UserID); ok {
			v.Author = &u
		}
		out = append(out, v)
	}
	return out
}

// FormatCount shortens counts above a thousand to one decimal, e.g. 15400 -> "15.4k".
// A count of exactly 1000 is printed as is.
func FormatCount(n int) string {
	if n > 1000 {
		return strconv.FormatFloat(float64(n)/1000, 'f', 1, 64) + "k"
	}
	return strconv.Itoa(n)
}
