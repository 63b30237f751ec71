// internal/stories/service.go

package stories

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
	"github.com/imadgeboyega/vibesnap-backend/internal/store"
)

type Service struct {
	store *store.Store
	tick  time.Duration
	log   *zap.Logger
}

func NewService(st *store.Store, tick time.Duration, log *zap.Logger) *Service {
	return &Service{store: st, tick: tick, log: log}
}

// Rail lists the stories in display order with their authors
func (s *Service) Rail() []StoryView {
	snap := s.store.Snapshot()
	out := make([]StoryView, 0, len(snap.Stories))
	for _, st := range snap.Stories {
		out = append(out, view(snap, st))
	}
	return out
}

func (s *Service) GetStory(id string) (StoryView, error) {
	snap := s.store.Snapshot()
	st, ok := snap.FindStory(id)
	if !ok {
		return StoryView{}, ErrStoryNotFound
	}
	return view(snap, st), nil
}

// MarkViewed flags the story as seen. The story is nil when id matched nothing.
func (s *Service) MarkViewed(id string) *state.Story {
	snap := s.store.Update("markStoryViewed", func(a state.AppState) state.AppState {
		return state.MarkStoryViewed(a, id)
	})
	st, ok := snap.FindStory(id)
	if !ok {
		return nil
	}
	return &st
}

// Play opens a player on the current rail starting at startID.
// Every story the player shows is marked viewed before onFrame sees it.
func (s *Service) Play(startID string, onFrame func(Frame)) *Player {
	stories := s.store.Snapshot().Stories

	var mu sync.Mutex
	shown := ""
	return NewPlayer(stories, startID, s.tick, func(f Frame) {
		mu.Lock()
		fresh := !f.Done && f.Story.ID != shown
		if fresh {
			shown = f.Story.ID
		}
		mu.Unlock()

		if fresh {
			s.MarkViewed(f.Story.ID)
			s.log.Debug("story shown", zap.String("story_id", f.Story.ID), zap.Int("index", f.Index))
		}
		if onFrame != nil {
			onFrame(f)
		}
	})
}

func view(snap state.AppState, st state.Story) StoryView {
	v := StoryView{Story: st}
	if u, ok := snap.FindUser(st.UserID); ok {
		v.Author = &u
	}
	return v
}
