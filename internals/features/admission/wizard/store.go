// file: internals/features/admission/wizard/store.go
package wizard

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps live wizard sessions in memory. Drafts are ephemeral: they exist
// only while their session does and are never persisted.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]*Session)}
}

func (st *Store) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

func (st *Store) Get(id uuid.UUID) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Remove closes and deletes the session. Safe to call twice.
func (st *Store) Remove(id uuid.UUID) {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if ok {
		s.Close()
	}
}

// Drop deletes a session that already closed itself (terminal submit).
func (st *Store) Drop(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// StartJanitor discards sessions idle longer than maxIdle.
func (st *Store) StartJanitor(interval, maxIdle time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			cutoff := time.Now().Add(-maxIdle)
			st.mu.Lock()
			var stale []*Session
			for id, s := range st.sessions {
				if s.IdleSince().Before(cutoff) {
					stale = append(stale, s)
					delete(st.sessions, id)
				}
			}
			st.mu.Unlock()
			for _, s := range stale {
				s.Close()
			}
			if n := len(stale); n > 0 {
				log.Printf("[INFO] wizard janitor discarded %d idle session(s)", n)
			}
		}
	}()
}
