package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

type memStore struct {
	sess    *domain.Session
	events  []*domain.User
	setErr  error
	cleared int
}

func (s *memStore) Token() string {
	if s.sess == nil {
		return ""
	}
	return s.sess.Token
}

func (s *memStore) Current() *domain.User {
	if s.sess == nil {
		return nil
	}
	return s.sess.User
}

func (s *memStore) Session() (*domain.Session, error) {
	return s.sess, nil
}

func (s *memStore) Set(sess *domain.Session) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.sess = sess
	s.events = append(s.events, sess.User)
	return nil
}

func (s *memStore) Clear() error {
	s.sess = nil
	s.cleared++
	s.events = append(s.events, nil)
	return nil
}

func (s *memStore) Subscribe(fn func(*domain.User)) func() {
	return func() {}
}

type mockProvider struct {
	name string

	authRes    *domain.AuthResult
	authErr    error
	sessionRes *domain.Session
	sessionErr error
	signOutErr error
	forgotMsg  string
	forgotErr  error
	resetMsg   string
	resetErr   error
	updateUser *domain.User
	updateErr  error

	calls []string
}

func (p *mockProvider) Name() string { return p.name }

func (p *mockProvider) SignUp(ctx context.Context, email, password, username, fullName string) (*domain.AuthResult, error) {
	p.calls = append(p.calls, "SignUp")
	return p.authRes, p.authErr
}

func (p *mockProvider) SignIn(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	p.calls = append(p.calls, "SignIn")
	return p.authRes, p.authErr
}

func (p *mockProvider) SignOut(ctx context.Context, token string) error {
	p.calls = append(p.calls, "SignOut")
	return p.signOutErr
}

func (p *mockProvider) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	p.calls = append(p.calls, "GetSession")
	return p.sessionRes, p.sessionErr
}

func (p *mockProvider) ForgotPassword(ctx context.Context, email string) (string, error) {
	p.calls = append(p.calls, "ForgotPassword")
	return p.forgotMsg, p.forgotErr
}

func (p *mockProvider) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	p.calls = append(p.calls, "ResetPassword")
	return p.resetMsg, p.resetErr
}

func (p *mockProvider) UpdateProfile(ctx context.Context, token string, updates domain.ProfileUpdate) (*domain.User, error) {
	p.calls = append(p.calls, "UpdateProfile")
	return p.updateUser, p.updateErr
}

func testUser() *domain.User {
	return &domain.User{ID: "u-1", Email: "ada@example.com", Username: "ada"}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestManager(store *memStore, providers ...Provider) *Manager {
	return NewManager(store, testLogger(), providers...)
}

func expiredJWT(t *testing.T) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return signed
}

func TestManagerSignInPrimarySuccess(t *testing.T) {
	primary := &mockProvider{
		name:    "backend",
		authRes: &domain.AuthResult{User: testUser(), Token: "tok-1", Source: domain.SourceBackend},
	}
	fallback := &mockProvider{name: "kratos"}
	store := &memStore{}
	m := newTestManager(store, primary, fallback)

	res, err := m.SignIn(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", res.Token)

	assert.Empty(t, fallback.calls, "fallback must not run when primary succeeds")
	require.NotNil(t, store.sess)
	assert.Equal(t, domain.SourceBackend, store.sess.Source)
	assert.Len(t, store.events, 1, "exactly one session change broadcast")
}

func TestManagerSignInFallback(t *testing.T) {
	primary := &mockProvider{name: "backend", authErr: errors.New("invalid email or password")}
	fallback := &mockProvider{
		name:    "kratos",
		authRes: &domain.AuthResult{User: testUser(), Token: "kratos-tok", Source: domain.SourceIdentity},
	}
	store := &memStore{}
	m := newTestManager(store, primary, fallback)

	res, err := m.SignIn(context.Background(), "ada@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceIdentity, res.Source)

	assert.Equal(t, []string{"SignIn"}, primary.calls)
	require.NotNil(t, store.sess)
	assert.Equal(t, "kratos-tok", store.sess.Token)
	assert.Len(t, store.events, 1, "exactly one session change broadcast")
}

func TestManagerSignInBothFail(t *testing.T) {
	primary := &mockProvider{name: "backend", authErr: errors.New("invalid email or password")}
	fallback := &mockProvider{name: "kratos", authErr: domain.ErrIdentityUnavailable}
	store := &memStore{}
	m := newTestManager(store, primary, fallback)

	_, err := m.SignIn(context.Background(), "ada@example.com", "secret")
	require.Error(t, err)

	var chain *ChainError
	require.ErrorAs(t, err, &chain)
	assert.Contains(t, err.Error(), "invalid email or password",
		"error message must carry the primary provider's diagnosis")
	assert.ErrorIs(t, err, domain.ErrIdentityUnavailable)
	assert.Nil(t, store.sess)
	assert.Empty(t, store.events)
}

func TestManagerSignInValidation(t *testing.T) {
	primary := &mockProvider{name: "backend"}
	m := newTestManager(&memStore{}, primary)

	_, err := m.SignIn(context.Background(), "not-an-email", "secret")
	require.Error(t, err)
	assert.Empty(t, primary.calls, "no provider call on invalid input")
}

func TestManagerSignUpVerificationPending(t *testing.T) {
	primary := &mockProvider{name: "backend", authErr: errors.New("email already registered")}
	fallback := &mockProvider{
		name: "kratos",
		authRes: &domain.AuthResult{
			User:    testUser(),
			Source:  domain.SourceIdentity,
			Message: "Please check your email to confirm your account.",
		},
	}
	store := &memStore{}
	m := newTestManager(store, primary, fallback)

	res, err := m.SignUp(context.Background(), "ada@example.com", "longenough", "ada", "Ada L")
	require.NoError(t, err)
	assert.Contains(t, res.Message, "check your email")
	assert.Nil(t, store.sess, "no session to persist while verification is pending")
	assert.Empty(t, store.events)
}

func TestManagerSignUpPersistsToken(t *testing.T) {
	primary := &mockProvider{
		name:    "backend",
		authRes: &domain.AuthResult{User: testUser(), Token: "tok-9", Source: domain.SourceBackend},
	}
	store := &memStore{}
	m := newTestManager(store, primary)

	_, err := m.SignUp(context.Background(), "ada@example.com", "longenough", "", "")
	require.NoError(t, err)
	require.NotNil(t, store.sess)
	assert.Equal(t, "tok-9", store.sess.Token)
}

func TestManagerSignOut(t *testing.T) {
	primary := &mockProvider{name: "backend", signOutErr: errors.New("token unknown")}
	fallback := &mockProvider{name: "kratos"}
	store := &memStore{sess: &domain.Session{Token: "tok-1", Source: domain.SourceBackend, User: testUser()}}
	m := newTestManager(store, primary, fallback)

	m.SignOut(context.Background())

	assert.Equal(t, []string{"SignOut"}, primary.calls, "rejection tolerated")
	assert.Equal(t, []string{"SignOut"}, fallback.calls, "every provider gets the invalidation")
	assert.Nil(t, store.sess)
	require.Len(t, store.events, 1)
	assert.Nil(t, store.events[0], "subscribers hear the signed-out state")
}

func TestManagerSignOutIdempotent(t *testing.T) {
	store := &memStore{}
	m := newTestManager(store, &mockProvider{name: "backend", signOutErr: domain.ErrNotSignedIn})

	m.SignOut(context.Background())
	m.SignOut(context.Background())

	assert.Equal(t, 2, store.cleared)
}

func TestManagerCurrentUser(t *testing.T) {
	cached := &domain.Session{Token: "tok-1", Source: domain.SourceBackend, User: testUser()}

	t.Run("primary recognizes token", func(t *testing.T) {
		primary := &mockProvider{
			name:       "backend",
			sessionRes: &domain.Session{Token: "tok-1", Source: domain.SourceBackend, User: testUser()},
		}
		fallback := &mockProvider{name: "kratos"}
		store := &memStore{sess: cached}
		m := newTestManager(store, primary, fallback)

		user := m.CurrentUser(context.Background())
		require.NotNil(t, user)
		assert.Equal(t, "ada", user.Username)
		assert.Empty(t, fallback.calls)
	})

	t.Run("fallback session recovers and persists", func(t *testing.T) {
		primary := &mockProvider{name: "backend", sessionErr: domain.ErrBackendUnavailable}
		recovered := &domain.Session{Token: "kratos-tok", Source: domain.SourceIdentity, User: testUser()}
		fallback := &mockProvider{name: "kratos", sessionRes: recovered}
		store := &memStore{sess: cached}
		m := newTestManager(store, primary, fallback)

		user := m.CurrentUser(context.Background())
		require.NotNil(t, user)
		assert.Equal(t, "kratos-tok", store.sess.Token, "recovered token replaces the dead one")
	})

	t.Run("stale cache survives total outage", func(t *testing.T) {
		primary := &mockProvider{name: "backend", sessionErr: domain.ErrBackendUnavailable}
		fallback := &mockProvider{name: "kratos", sessionErr: domain.ErrSessionNotFound}
		store := &memStore{sess: cached}
		m := newTestManager(store, primary, fallback)

		user := m.CurrentUser(context.Background())
		require.NotNil(t, user, "cached user is better than nothing while offline")
		assert.Equal(t, "u-1", user.ID)
	})

	t.Run("signed out", func(t *testing.T) {
		primary := &mockProvider{name: "backend", sessionErr: domain.ErrNotSignedIn}
		fallback := &mockProvider{name: "kratos", sessionErr: domain.ErrSessionNotFound}
		m := newTestManager(&memStore{}, primary, fallback)

		assert.Nil(t, m.CurrentUser(context.Background()))
	})

	t.Run("expired jwt skips primary", func(t *testing.T) {
		primary := &mockProvider{name: "backend", sessionErr: errors.New("should not be called")}
		fallback := &mockProvider{name: "kratos", sessionErr: domain.ErrSessionNotFound}
		store := &memStore{sess: &domain.Session{Token: expiredJWT(t), Source: domain.SourceBackend, User: testUser()}}
		m := newTestManager(store, primary, fallback)

		user := m.CurrentUser(context.Background())
		assert.Empty(t, primary.calls, "provably expired token never hits the primary")
		require.NotNil(t, user, "cache still answers")
	})
}

func TestManagerForgotPasswordFallback(t *testing.T) {
	primary := &mockProvider{name: "backend", forgotErr: domain.ErrBackendUnavailable}
	fallback := &mockProvider{name: "kratos", forgotMsg: "Recovery code sent to ada@example.com."}
	m := newTestManager(&memStore{}, primary, fallback)

	msg, err := m.ForgotPassword(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Contains(t, msg, "Recovery code")
}

func TestManagerResetPassword(t *testing.T) {
	t.Run("emailed token goes to primary only", func(t *testing.T) {
		primary := &mockProvider{name: "backend", resetMsg: "Password updated."}
		fallback := &mockProvider{name: "kratos"}
		m := newTestManager(&memStore{}, primary, fallback)

		msg, err := m.ResetPassword(context.Background(), "reset-123", "newpassword")
		require.NoError(t, err)
		assert.Equal(t, "Password updated.", msg)
		assert.Empty(t, fallback.calls)
	})

	t.Run("no token requires a session", func(t *testing.T) {
		m := newTestManager(&memStore{}, &mockProvider{name: "backend"})

		_, err := m.ResetPassword(context.Background(), "", "newpassword")
		assert.ErrorIs(t, err, domain.ErrNotSignedIn)
	})

	t.Run("session-based change uses the settings flow", func(t *testing.T) {
		primary := &mockProvider{name: "backend"}
		fallback := &mockProvider{name: "kratos", resetMsg: "Password changed."}
		store := &memStore{sess: &domain.Session{Token: "kratos-tok", Source: domain.SourceIdentity, User: testUser()}}
		m := newTestManager(store, primary, fallback)

		msg, err := m.ResetPassword(context.Background(), "", "newpassword")
		require.NoError(t, err)
		assert.Equal(t, "Password changed.", msg)
		assert.Empty(t, primary.calls, "primary resets only with an emailed token")
	})
}

func TestManagerUpdateProfile(t *testing.T) {
	updated := testUser()
	updated.Bio = "hello"

	primary := &mockProvider{name: "backend", updateUser: updated}
	store := &memStore{sess: &domain.Session{Token: "tok-1", Source: domain.SourceBackend, User: testUser()}}
	m := newTestManager(store, primary)

	user, err := m.UpdateProfile(context.Background(), domain.ProfileUpdate{Bio: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", user.Bio)

	require.NotNil(t, store.sess)
	assert.Equal(t, "hello", store.sess.User.Bio, "session re-persisted with the new profile")
	assert.Equal(t, "tok-1", store.sess.Token, "token survives the profile update")
	assert.Len(t, store.events, 1)
}

func TestManagerUpdateProfileSignedOut(t *testing.T) {
	m := newTestManager(&memStore{}, &mockProvider{name: "backend"})

	_, err := m.UpdateProfile(context.Background(), domain.ProfileUpdate{Bio: "hello"})
	assert.ErrorIs(t, err, domain.ErrNotSignedIn)
}

func TestManagerUpdateProfileValidation(t *testing.T) {
	primary := &mockProvider{name: "backend"}
	store := &memStore{sess: &domain.Session{Token: "tok-1", User: testUser()}}
	m := newTestManager(store, primary)

	_, err := m.UpdateProfile(context.Background(), domain.ProfileUpdate{Website: "not a url"})
	require.Error(t, err)
	assert.Empty(t, primary.calls)
}

func TestManagerOAuthURL(t *testing.T) {
	m := newTestManager(&memStore{}, &mockProvider{name: "backend"})
	_, err := m.OAuthURL("google")
	assert.ErrorIs(t, err, domain.ErrIdentityUnavailable)
}

func TestChainErrorDetail(t *testing.T) {
	err := &ChainError{Op: "sign in", Attempts: []Attempt{
		{Provider: "backend", Err: errors.New("invalid email or password")},
		{Provider: "kratos", Err: errors.New("connection refused")},
	}}
	assert.Equal(t, "sign in: invalid email or password", err.Error())
	assert.Contains(t, err.Detail(), "kratos: connection refused")
}
