// internal/messaging/service.go

package messaging

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/imadgeboyega/vibesnap-backend/internal/scheduler"
	"github.com/imadgeboyega/vibesnap-backend/internal/state"
	"github.com/imadgeboyega/vibesnap-backend/internal/store"
)

// Service defines messaging operations
type Service interface {
	ListThreads(ctx context.Context) []ThreadView
	OpenThread(ctx context.Context, threadID string) (*ThreadView, error)
	Send(ctx context.Context, sender state.User, threadID string, req *SendMessageRequest) *SendResponse
	// CancelReplies drops every reply that has not been delivered yet.
	CancelReplies()
}

type service struct {
	store      *store.Store
	replies    *scheduler.Group
	replyDelay time.Duration
	log        *zap.Logger
	now        func() time.Time
	newID      func() string
}

func NewService(st *store.Store, replyDelay time.Duration, log *zap.Logger) Service {
	return &service{
		store:      st,
		replies:    scheduler.NewGroup(),
		replyDelay: replyDelay,
		log:        log,
		now:        time.Now,
		newID:      func() string { return "m_" + uuid.New().String() },
	}
}

func (s *service) ListThreads(_ context.Context) []ThreadView {
	snap := s.store.Snapshot()
	out := make([]ThreadView, 0, len(snap.Threads))
	for _, t := range snap.Threads {
		out = append(out, threadView(snap, t))
	}
	return out
}

// OpenThread returns the thread and clears its unread count
func (s *service) OpenThread(_ context.Context, threadID string) (*ThreadView, error) {
	snap := s.store.Update("markThreadRead", func(a state.AppState) state.AppState {
		return state.MarkThreadRead(a, threadID)
	})
	thread, ok := snap.FindThread(threadID)
	if !ok {
		return nil, ErrThreadNotFound
	}
	v := threadView(snap, thread)
	return &v, nil
}

// Send appends the message and schedules the counterpart's reply.
// An unknown thread changes nothing and schedules nothing.
func (s *service) Send(_ context.Context, sender state.User, threadID string, req *SendMessageRequest) *SendResponse {
	msg := state.Message{
		ID:        s.newID(),
		SenderID:  sender.ID,
		Payload:   payload(req),
		Timestamp: s.now(),
		IsOwn:     true,
	}

	var counterpart string
	snap := s.store.Update("appendMessage", func(a state.AppState) state.AppState {
		thread, ok := a.FindThread(threadID)
		if !ok {
			return a
		}
		counterpart = thread.UserID
		return state.AppendMessage(a, threadID, msg)
	})

	resp := &SendResponse{ThreadID: threadID}
	thread, ok := snap.FindThread(threadID)
	if !ok || counterpart == "" {
		return resp
	}

	s.scheduleReply(threadID, counterpart)

	resp.Message = &msg
	resp.Thread = &thread
	resp.ReplyPending = true
	return resp
}

func (s *service) scheduleReply(threadID, counterpart string) {
	s.replies.After("auto_reply", s.replyDelay, func() {
		reply := state.NewTextMessage(s.newID(), counterpart, ReplyText, s.now(), false)
		s.store.Update("autoReply", func(a state.AppState) state.AppState {
			return state.AppendMessage(a, threadID, reply)
		})
		s.log.Debug("auto reply delivered", zap.String("thread_id", threadID))
	})
}

func (s *service) CancelReplies() {
	s.replies.CancelAll()
}

func payload(req *SendMessageRequest) state.Payload {
	switch req.Type {
	case state.MessageImage:
		return state.ImagePayload{ImageURL: req.ImageURL}
	case state.MessageAudio:
		url := req.AudioURL
		if url == "" {
			url = DefaultAudioURL
		}
		return state.AudioPayload{AudioURL: url}
	default:
		return state.TextPayload{Text: req.Text}
	}
}

func threadView(snap state.AppState, t state.ChatThread) ThreadView {
	v := ThreadView{ChatThread: t}
	if u, ok := snap.FindUser(t.UserID); ok {
		v.Counterpart = &u
	}
	return v
}
