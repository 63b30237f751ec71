// internal/admin/service.go
// Moderation tools available to admin users.

package admin

import (
	"context"

	"go.uber.org/zap"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
	"github.com/imadgeboyega/vibesnap-backend/internal/store"
)

type Service struct {
	store *store.Store
	log   *zap.Logger
}

func NewService(st *store.Store, log *zap.Logger) *Service {
	return &Service{store: st, log: log}
}

func (s *Service) Stats(_ context.Context) Stats {
	snap := s.store.Snapshot()
	return Stats{
		TotalUsers:     len(snap.Users),
		TotalPosts:     len(snap.Posts),
		PendingReports: len(snap.PendingReports()),
	}
}

// Users lists directory users whose username contains term, ignoring case
func (s *Service) Users(_ context.Context, term string) []state.User {
	return s.store.Snapshot().SearchUsers(term)
}

// ToggleBan flips the banned flag. The user is nil when the id matched nothing.
func (s *Service) ToggleBan(_ context.Context, userID string) *state.User {
	snap := s.store.Update("toggleBan", func(a state.AppState) state.AppState {
		return state.ToggleBan(a, userID)
	})

	user, ok := snap.FindUser(userID)
	if !ok {
		return nil
	}
	s.log.Info("user ban toggled", zap.String("user_id", userID), zap.Bool("banned", user.IsBanned))
	return &user
}

// DeletePost removes the post. Reports and notifications pointing at it are left alone.
func (s *Service) DeletePost(_ context.Context, postID string) {
	removed := false
	s.store.Update("deletePost", func(a state.AppState) state.AppState {
		next := state.DeletePost(a, postID)
		removed = len(next.Posts) < len(a.Posts)
		return next
	})
	if removed {
		s.log.Info("post deleted by admin", zap.String("post_id", postID))
	}
}

func (s *Service) Reports(_ context.Context) []ReportView {
	snap := s.store.Snapshot()
	out := make([]ReportView, 0, len(snap.Reports))
	for _, r := range snap.Reports {
		v := ReportView{Report: r}
		if post, ok := snap.FindPost(r.TargetID); ok && r.TargetType == state.ReportTargetPost {
			v.TargetPost = &post
		}
		if reporter, ok := snap.FindUser(r.ReportedBy); ok {
			v.Reporter = &reporter
		}
		out = append(out, v)
	}
	return out
}

func (s *Service) SetReportStatus(_ context.Context, reportID string, status state.ReportStatus) *state.Report {
	snap := s.store.Update("setReportStatus", func(a state.AppState) state.AppState {
		return state.SetReportStatus(a, reportID, status)
	})
	for _, r := range snap.Reports {
		if r.ID == reportID {
			return &r
		}
	}
	return nil
}
