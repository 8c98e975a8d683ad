// Package session persists the client's session (bearer token plus user
// snapshot) to a single JSON file and broadcasts changes to subscribers.
// The auth shim is the only writer. The file is a convenience cache, not a
// trust source; any read may be stale.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// Store is a file-backed session cache with change notification.
// Implements domain.SessionStore.
type Store struct {
	mu      sync.RWMutex
	path    string
	logger  *slog.Logger
	current *domain.Session

	subMu   sync.Mutex
	subs    map[int]func(*domain.User)
	nextSub int

	watcher *watcher
}

// NewStore opens the session cache at path. A missing or corrupt file is
// treated as signed out, not an error.
func NewStore(path string, logger *slog.Logger) *Store {
	s := &Store{
		path:   path,
		logger: logger.With("component", "session_store"),
		subs:   make(map[int]func(*domain.User)),
	}
	if sess, err := readFile(path); err == nil {
		s.current = sess
	} else if !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("ignoring unreadable session cache", "path", path, "error", err)
	}
	return s
}

// Token returns the cached bearer token, or "" when signed out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Current returns the cached user snapshot, possibly stale, or nil.
func (s *Store) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	return s.current.User
}

// Session returns the full cached session.
func (s *Store) Session() (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, domain.ErrNoCachedSession
	}
	cp := *s.current
	return &cp, nil
}

// Set persists the session atomically and notifies subscribers.
func (s *Store) Set(sess *domain.Session) error {
	if err := writeFile(s.path, sess); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()

	s.notify(sess.User)
	return nil
}

// Clear removes the persisted session and notifies subscribers with nil.
// Clearing an already-empty store is a no-op that still notifies, so a
// sign-out is total regardless of prior state.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clearing session cache: %w", err)
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.notify(nil)
	return nil
}

// Subscribe registers a session-changed listener and returns a cancel func.
func (s *Store) Subscribe(fn func(*domain.User)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(u *domain.User) {
	s.subMu.Lock()
	fns := make([]func(*domain.User), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(u)
	}
}

// reload re-reads the file after an external change and re-broadcasts when
// the session actually differs from what is held in memory.
func (s *Store) reload() {
	sess, err := readFile(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("reloading session cache failed", "error", err)
		return
	}

	s.mu.Lock()
	if sameSession(s.current, sess) {
		s.mu.Unlock()
		return
	}
	s.current = sess
	s.mu.Unlock()

	if sess == nil {
		s.notify(nil)
		return
	}
	s.notify(sess.User)
}

func sameSession(a, b *domain.Session) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Token != b.Token || a.Source != b.Source {
		return false
	}
	au, bu := a.User, b.User
	if au == nil || bu == nil {
		return au == bu
	}
	return au.ID == bu.ID && au.Username == bu.Username && au.Email == bu.Email
}

func readFile(path string) (*domain.Session, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("parsing session cache: %w", err)
	}
	if sess.Token == "" && sess.User == nil {
		return nil, nil
	}
	return &sess, nil
}

// writeFile persists atomically: temp file in the same directory, then
// rename, so a concurrent reader never observes a half-written cache.
func writeFile(path string, sess *domain.Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating session dir: %w", err)
	}

	raw, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".session-*.json")
	if err != nil {
		return fmt.Errorf("creating temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("writing session: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("restricting session file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing session file: %w", err)
	}
	return nil
}
