// internal/persistence/adapter.go
// Persists the session user, the feed and the user directory to a key-value store
// and restores them once on startup.

package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/imadgeboyega/vibesnap-backend/internal/metrics"
	"github.com/imadgeboyega/vibesnap-backend/internal/state"
	"github.com/imadgeboyega/vibesnap-backend/internal/storage"
)

// Storage keys, shared with the browser client format.
const (
	KeyUser  = "vibesnap_user"
	KeyPosts = "vibesnap_posts"
	KeyUsers = "vibesnap_users_db"
)

const writeTimeout = 5 * time.Second

type Adapter struct {
	kv      storage.KV
	log     *zap.Logger
	pending chan state.AppState
}

func New(kv storage.KV, log *zap.Logger) *Adapter {
	return &Adapter{
		kv:      kv,
		log:     log,
		pending: make(chan state.AppState, 1),
	}
}

// Hydrate overlays persisted pieces onto base. Absent keys keep the base piece;
// a missing user key means logged out. Keys holding invalid JSON are logged and skipped.
// The returned error reports backend read failures; the state is still usable.
func (a *Adapter) Hydrate(ctx context.Context, base state.AppState) (state.AppState, error) {
	var errs []error
	s := base
	s.CurrentUser = nil

	var user state.User
	switch ok, err := a.load(ctx, KeyUser, &user); {
	case err != nil:
		errs = append(errs, err)
	case ok:
		s.CurrentUser = &user
	}

	var posts []state.Post
	switch ok, err := a.load(ctx, KeyPosts, &posts); {
	case err != nil:
		errs = append(errs, err)
	case ok:
		s.Posts = posts
	}

	var users []state.User
	switch ok, err := a.load(ctx, KeyUsers, &users); {
	case err != nil:
		errs = append(errs, err)
	case ok:
		s.Users = users
	}

	return s, errors.Join(errs...)
}

// load reports whether key held a decodable value.
func (a *Adapter) load(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, found, err := a.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		a.log.Warn("ignoring unreadable persisted value", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// StateChanged queues s for the writer without waiting. Only the newest queued snapshot is kept.
func (a *Adapter) StateChanged(_ string, s state.AppState) {
	select {
	case a.pending <- s:
		return
	default:
	}
	// Drop the stale snapshot and retry once.
	select {
	case <-a.pending:
	default:
	}
	select {
	case a.pending <- s:
	default:
	}
}

// Run writes queued snapshots until ctx is done, then flushes the last one.
func (a *Adapter) Run(ctx context.Context) {
	for {
		select {
		case s := <-a.pending:
			a.write(context.Background(), s)
		case <-ctx.Done():
			select {
			case s := <-a.pending:
				a.write(context.Background(), s)
			default:
			}
			return
		}
	}
}

func (a *Adapter) write(parent context.Context, s state.AppState) {
	ctx, cancel := context.WithTimeout(parent, writeTimeout)
	defer cancel()
	if err := a.Save(ctx, s); err != nil {
		a.log.Error("failed to persist snapshot", zap.Error(err))
	}
}

// Save overwrites all three keys from s. The user key is deleted when nobody is logged in.
func (a *Adapter) Save(ctx context.Context, s state.AppState) error {
	var errs []error

	if s.CurrentUser == nil {
		if err := a.kv.Delete(ctx, KeyUser); err != nil {
			metrics.PersistenceWrite(KeyUser, "error")
			errs = append(errs, fmt.Errorf("failed to delete %s: %w", KeyUser, err))
		} else {
			metrics.PersistenceWrite(KeyUser, "deleted")
		}
	} else {
		errs = append(errs, a.put(ctx, KeyUser, s.CurrentUser))
	}

	errs = append(errs, a.put(ctx, KeyPosts, s.Posts))
	errs = append(errs, a.put(ctx, KeyUsers, s.Users))

	return errors.Join(errs...)
}

func (a *Adapter) put(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		metrics.PersistenceWrite(key, "error")
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := a.kv.Set(ctx, key, string(data)); err != nil {
		metrics.PersistenceWrite(key, "error")
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	metrics.PersistenceWrite(key, "ok")
	return nil
}
