package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
	"github.com/Sowjanyakambhampati/forumctl/internal/validate"
)

// Manager runs every auth operation through the provider chain: the forum
// backend first, then the identity provider. The first success wins, its
// session is persisted to the store, and subscribers hear about it exactly
// once. Only when every provider fails does the caller see an error.
type Manager struct {
	providers []Provider
	store     domain.SessionStore
	validator *validate.Validator
	logger    *slog.Logger
	now       func() time.Time
}

// NewManager builds a Manager over providers, tried in the given order.
func NewManager(store domain.SessionStore, logger *slog.Logger, providers ...Provider) *Manager {
	return &Manager{
		providers: providers,
		store:     store,
		validator: validate.New(),
		logger:    logger.With("component", "auth"),
		now:       time.Now,
	}
}

type signUpInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Username string `json:"username" validate:"omitempty,min=3,max=32"`
	FullName string `json:"fullName" validate:"omitempty,max=100"`
}

type signInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUp registers an account on the first provider that accepts it. A
// result without a token means verification is pending; nothing is persisted
// and the result's message tells the user what to do next.
func (m *Manager) SignUp(ctx context.Context, email, password, username, fullName string) (*domain.AuthResult, error) {
	in := signUpInput{Email: email, Password: password, Username: username, FullName: fullName}
	if err := m.validator.Struct(in); err != nil {
		return nil, err
	}

	var attempts []Attempt
	for _, p := range m.providers {
		res, err := p.SignUp(ctx, email, password, username, fullName)
		if err != nil {
			m.logger.Warn("sign-up failed, trying next provider", "provider", p.Name(), "error", err)
			attempts = append(attempts, Attempt{Provider: p.Name(), Err: err})
			continue
		}
		if res.Token != "" {
			if err := m.persist(res); err != nil {
				return nil, err
			}
		}
		return res, nil
	}
	return nil, &ChainError{Op: "sign up", Attempts: attempts}
}

// SignIn authenticates on the first provider that recognizes the
// credentials and persists the resulting session.
func (m *Manager) SignIn(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	in := signInInput{Email: email, Password: password}
	if err := m.validator.Struct(in); err != nil {
		return nil, err
	}

	var attempts []Attempt
	for _, p := range m.providers {
		res, err := p.SignIn(ctx, email, password)
		if err != nil {
			m.logger.Warn("sign-in failed, trying next provider", "provider", p.Name(), "error", err)
			attempts = append(attempts, Attempt{Provider: p.Name(), Err: err})
			continue
		}
		if err := m.persist(res); err != nil {
			return nil, err
		}
		m.logger.Info("signed in", "provider", p.Name(), "user", res.User.Username)
		return res, nil
	}
	return nil, &ChainError{Op: "sign in", Attempts: attempts}
}

// SignOut invalidates the current token on every provider that will take it,
// then clears the local session. Provider failures are logged and swallowed:
// sign-out always leaves the user signed out locally.
func (m *Manager) SignOut(ctx context.Context) {
	token := m.store.Token()
	for _, p := range m.providers {
		if err := p.SignOut(ctx, token); err != nil {
			m.logger.Debug("sign-out rejected", "provider", p.Name(), "error", err)
		}
	}
	if err := m.store.Clear(); err != nil {
		m.logger.Warn("clearing local session failed", "error", err)
	}
}

// CurrentUser resolves the signed-in user without ever failing: a cached
// token is checked against the primary backend first, then the identity
// provider; if neither recognizes it the cached user is returned as-is so the
// caller can still render something while offline. Nil means signed out.
func (m *Manager) CurrentUser(ctx context.Context) *domain.User {
	token := m.store.Token()

	if len(m.providers) > 0 && token != "" && !tokenExpired(token, m.now()) {
		sess, err := m.providers[0].GetSession(ctx, token)
		if err == nil {
			return sess.User
		}
		m.logger.Debug("primary session check failed", "provider", m.providers[0].Name(), "error", err)
	}

	for _, p := range m.fallbacks() {
		sess, err := p.GetSession(ctx, token)
		if err != nil {
			m.logger.Debug("fallback session check failed", "provider", p.Name(), "error", err)
			continue
		}
		if err := m.store.Set(sess); err != nil {
			m.logger.Warn("persisting recovered session failed", "error", err)
		}
		return sess.User
	}

	return m.store.Current()
}

// ForgotPassword requests a reset on the first provider that accepts the
// address and returns that provider's instruction message.
func (m *Manager) ForgotPassword(ctx context.Context, email string) (string, error) {
	if err := m.validator.Var(email, "required,email"); err != nil {
		return "", err
	}

	var attempts []Attempt
	for _, p := range m.providers {
		msg, err := p.ForgotPassword(ctx, email)
		if err != nil {
			m.logger.Warn("password reset request failed, trying next provider", "provider", p.Name(), "error", err)
			attempts = append(attempts, Attempt{Provider: p.Name(), Err: err})
			continue
		}
		return msg, nil
	}
	return "", &ChainError{Op: "request password reset", Attempts: attempts}
}

// ResetPassword sets a new password. With a reset token from the email it
// goes straight to the primary backend, which issued it; without one it needs
// a live session and runs the fallback providers' settings flows.
func (m *Manager) ResetPassword(ctx context.Context, resetToken, newPassword string) (string, error) {
	if err := m.validator.Var(newPassword, "required,min=8"); err != nil {
		return "", err
	}

	if resetToken != "" {
		if len(m.providers) == 0 {
			return "", &ChainError{Op: "reset password"}
		}
		return m.providers[0].ResetPassword(ctx, resetToken, newPassword)
	}

	token := m.store.Token()
	if token == "" {
		return "", domain.ErrNotSignedIn
	}

	var attempts []Attempt
	for _, p := range m.fallbacks() {
		msg, err := p.ResetPassword(ctx, token, newPassword)
		if err != nil {
			m.logger.Warn("password change failed, trying next provider", "provider", p.Name(), "error", err)
			attempts = append(attempts, Attempt{Provider: p.Name(), Err: err})
			continue
		}
		return msg, nil
	}
	return "", &ChainError{Op: "reset password", Attempts: attempts}
}

// UpdateProfile writes profile changes through the provider chain and
// re-persists the session so subscribers see the refreshed user.
func (m *Manager) UpdateProfile(ctx context.Context, updates domain.ProfileUpdate) (*domain.User, error) {
	if err := m.validator.Struct(updates); err != nil {
		return nil, err
	}

	token := m.store.Token()
	if token == "" {
		return nil, domain.ErrNotSignedIn
	}

	var attempts []Attempt
	for _, p := range m.providers {
		user, err := p.UpdateProfile(ctx, token, updates)
		if err != nil {
			m.logger.Warn("profile update failed, trying next provider", "provider", p.Name(), "error", err)
			attempts = append(attempts, Attempt{Provider: p.Name(), Err: err})
			continue
		}
		if sess, serr := m.store.Session(); serr == nil && sess != nil {
			sess.User = user
			if err := m.store.Set(sess); err != nil {
				m.logger.Warn("persisting updated profile failed", "error", err)
			}
		}
		return user, nil
	}
	return nil, &ChainError{Op: "update profile", Attempts: attempts}
}

// OAuthURL returns the browser URL that starts an OIDC sign-in with the
// named third-party provider, when any provider in the chain supports it.
func (m *Manager) OAuthURL(provider string) (string, error) {
	for _, p := range m.providers {
		if o, ok := p.(interface{ OAuthURL(string) string }); ok {
			return o.OAuthURL(provider), nil
		}
	}
	return "", domain.ErrIdentityUnavailable
}

// Refresh exchanges the current token for a fresh one on any provider that
// supports refreshing, persisting the replacement.
func (m *Manager) Refresh(ctx context.Context) (*domain.AuthResult, error) {
	if m.store.Token() == "" {
		return nil, domain.ErrNotSignedIn
	}

	var attempts []Attempt
	for _, p := range m.providers {
		r, ok := p.(interface {
			Refresh(ctx context.Context) (*domain.AuthResult, error)
		})
		if !ok {
			continue
		}
		res, err := r.Refresh(ctx)
		if err != nil {
			m.logger.Warn("token refresh failed, trying next provider", "provider", p.Name(), "error", err)
			attempts = append(attempts, Attempt{Provider: p.Name(), Err: err})
			continue
		}
		if err := m.persist(res); err != nil {
			return nil, err
		}
		return res, nil
	}
	return nil, &ChainError{Op: "refresh token", Attempts: attempts}
}

func (m *Manager) persist(res *domain.AuthResult) error {
	sess := &domain.Session{Token: res.Token, Source: res.Source, User: res.User}
	if err := m.store.Set(sess); err != nil {
		m.logger.Error("persisting session failed", "error", err)
		return err
	}
	return nil
}

func (m *Manager) fallbacks() []Provider {
	if len(m.providers) < 2 {
		return nil
	}
	return m.providers[1:]
}
