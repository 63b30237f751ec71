// internal/notification/service.go

package notifications

import (
	"go.uber.org/zap"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
	"github.com/imadgeboyega/vibesnap-backend/internal/store"
)

type Service struct {
	store     *store.Store
	templates *TemplateService
	log       *zap.Logger
}

func NewService(st *store.Store, templates *TemplateService, log *zap.Logger) *Service {
	return &Service{store: st, templates: templates, log: log}
}

// List groups notifications into today and this week. The split is by position,
// so a skipped item does not pull a later one into "Today".
func (s *Service) List() Sections {
	snap := s.store.Snapshot()

	today, week := snap.Notifications, []state.Notification(nil)
	if len(today) > TodayCount {
		today, week = snap.Notifications[:TodayCount], snap.Notifications[TodayCount:]
	}

	return Sections{
		Today:    s.items(snap, today),
		ThisWeek: s.items(snap, week),
		Unread:   unread(snap),
	}
}

// items renders ns, skipping notifications whose actor is not in the directory
func (s *Service) items(snap state.AppState, ns []state.Notification) []Item {
	out := make([]Item, 0, len(ns))
	for _, n := range ns {
		actor, ok := snap.FindUser(n.UserID)
		if !ok {
			continue
		}

		text, err := s.templates.RenderBody(n)
		if err != nil {
			s.log.Warn("failed to render notification", zap.String("id", n.ID), zap.Error(err))
			continue
		}
		thumb, err := s.templates.RenderThumbnail(n)
		if err != nil {
			s.log.Warn("failed to render thumbnail", zap.String("id", n.ID), zap.Error(err))
		}

		out = append(out, Item{
			Notification: n,
			Actor:        actor,
			Text:         text,
			Thumbnail:    thumb,
			FollowButton: n.Type == state.NotificationFollow,
		})
	}
	return out
}

// MarkAsRead marks one notification read. The notification is nil when id matched nothing.
func (s *Service) MarkAsRead(id string) MarkReadResponse {
	snap := s.store.Update("markNotificationRead", func(a state.AppState) state.AppState {
		return state.MarkNotificationRead(a, id)
	})

	resp := MarkReadResponse{ID: id, Unread: unread(snap)}
	for _, n := range snap.Notifications {
		if n.ID == id {
			n := n
			resp.Notification = &n
			break
		}
	}
	return resp
}

func (s *Service) MarkAllAsRead() MarkReadResponse {
	snap := s.store.Update("markAllNotificationsRead", state.MarkAllNotificationsRead)
	return MarkReadResponse{Unread: unread(snap)}
}

func unread(snap state.AppState) int {
	n := 0
	for _, notif := range snap.Notifications {
		if !notif.IsRead {
			n++
		}
	}
	return n
}
