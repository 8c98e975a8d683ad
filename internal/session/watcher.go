package session

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watcher propagates session changes made by other forumctl processes, the
// way browser tabs converge through storage events. It watches the session
// file's directory (atomic replace is a rename, which a file watch would
// lose) and reloads the store on any event touching the file.
type watcher struct {
	fs     *fsnotify.Watcher
	done   chan struct{}
	logger *slog.Logger
}

// Watch starts cross-process propagation. Safe to call once; use Close to
// stop. The session directory must exist.
func (s *Store) Watch() error {
	if s.watcher != nil {
		return nil
	}

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting session watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(s.path)); err != nil {
		fs.Close()
		return fmt.Errorf("watching session dir: %w", err)
	}

	w := &watcher{fs: fs, done: make(chan struct{}), logger: s.logger}
	s.watcher = w

	go w.run(s)
	return nil
}

// Close stops the watcher. No-op when Watch was never called.
func (s *Store) Close() error {
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.fs.Close()
	<-s.watcher.done
	s.watcher = nil
	return err
}

func (w *watcher) run(s *Store) {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != s.path {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0 {
				s.reload()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("session watcher error", "error", err)
		}
	}
}
