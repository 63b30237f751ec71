// internal/store/store.go
// Store owns the single AppState of the process.
// Mutations are serialized and observers see snapshots in mutation order.

package store

import (
	"sync"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
)

// Observer is notified after every applied mutation.
// StateChanged runs while the store is locked: it must not block and must not call back into the store.
type Observer interface {
	StateChanged(op string, s state.AppState)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(op string, s state.AppState)

func (f ObserverFunc) StateChanged(op string, s state.AppState) {
	f(op, s)
}

// Operation is a pure transformation of the entity store.
type Operation func(state.AppState) state.AppState

type Store struct {
	mu        sync.RWMutex
	current   state.AppState
	observers []Observer
}

// New creates a store holding initial.
func New(initial state.AppState) *Store {
	return &Store{current: initial}
}

// Snapshot returns the current state. Callers may keep it; later mutations never change it.
func (s *Store) Snapshot() state.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Subscribe registers an observer for subsequent mutations.
func (s *Store) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Update applies fn and notifies observers with the resulting snapshot, which is also returned.
// op names the mutation for observers (logging, metrics).
func (s *Store) Update(op string, fn Operation) state.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = fn(s.current)
	for _, o := range s.observers {
		o.StateChanged(op, s.current)
	}
	return s.current
}
