package session

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSession() *domain.Session {
	return &domain.Session{
		Token:  "tok-1",
		Source: domain.SourceBackend,
		User:   &domain.User{ID: "u-1", Email: "ada@example.com", Username: "ada"},
	}
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewStore(path, testLogger())

	require.NoError(t, s.Set(testSession()))
	assert.Equal(t, "tok-1", s.Token())
	require.NotNil(t, s.Current())
	assert.Equal(t, "ada", s.Current().Username)

	// A fresh store reads the same session back from disk.
	s2 := NewStore(path, testLogger())
	assert.Equal(t, "tok-1", s2.Token())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "session file must not be world-readable")
}

func TestStoreMissingFileMeansSignedOut(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "absent.json"), testLogger())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.Current())

	_, err := s.Session()
	assert.ErrorIs(t, err, domain.ErrNoCachedSession)
}

func TestStoreCorruptFileMeansSignedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{garbage"), 0o600))

	s := NewStore(path, testLogger())
	assert.Empty(t, s.Token())
	assert.Nil(t, s.Current())
}

func TestStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewStore(path, testLogger())
	require.NoError(t, s.Set(testSession()))

	var events []*domain.User
	cancel := s.Subscribe(func(u *domain.User) { events = append(events, u) })
	defer cancel()

	require.NoError(t, s.Clear())
	assert.Empty(t, s.Token())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "session file must be removed")
	require.Len(t, events, 1)
	assert.Nil(t, events[0])

	// Clearing again is a no-op that still notifies.
	require.NoError(t, s.Clear())
	assert.Len(t, events, 2)
}

func TestStoreSubscribeCancel(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "session.json"), testLogger())

	var calls int
	cancel := s.Subscribe(func(*domain.User) { calls++ })

	require.NoError(t, s.Set(testSession()))
	cancel()
	require.NoError(t, s.Clear())

	assert.Equal(t, 1, calls, "no notifications after cancel")
}

func TestStoreWatchPicksUpExternalWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewStore(path, testLogger())
	require.NoError(t, s.Watch())
	defer s.Close()

	done := make(chan *domain.User, 1)
	cancel := s.Subscribe(func(u *domain.User) {
		select {
		case done <- u:
		default:
		}
	})
	defer cancel()

	// Another process signs in: same atomic temp+rename protocol.
	other := NewStore(path, testLogger())
	require.NoError(t, other.Set(testSession()))

	select {
	case u := <-done:
		require.NotNil(t, u)
		assert.Equal(t, "ada", u.Username)
	case <-time.After(3 * time.Second):
		t.Fatal("no change notification after external write")
	}

	assert.Equal(t, "tok-1", s.Token(), "watcher must refresh the in-memory session")
}

func TestStoreWatchIgnoresIdenticalRewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewStore(path, testLogger())
	require.NoError(t, s.Set(testSession()))
	require.NoError(t, s.Watch())
	defer s.Close()

	var notified int
	cancel := s.Subscribe(func(*domain.User) { notified++ })
	defer cancel()

	// Rewrite the same session externally; content is unchanged so no
	// broadcast should fire.
	other := NewStore(path, testLogger())
	require.NoError(t, other.Set(testSession()))

	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, notified)
}
