package auth

import (
	"context"
	"log/slog"

	"github.com/Sowjanyakambhampati/forumctl/internal/api"
	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// BackendProvider authenticates against the community forum backend. It is
// the primary provider: its tokens are the ones the REST client sends, so the
// Manager always tries it first.
type BackendProvider struct {
	auth   *api.AuthAPI
	users  *api.UsersAPI
	logger *slog.Logger
}

// NewBackendProvider wraps the forum backend's auth and user endpoints.
func NewBackendProvider(client *api.Client, logger *slog.Logger) *BackendProvider {
	return &BackendProvider{
		auth:   api.NewAuthAPI(client),
		users:  api.NewUsersAPI(client),
		logger: logger.With("component", "auth.backend"),
	}
}

// Name implements Provider.
func (b *BackendProvider) Name() string {
	return "backend"
}

// SignUp registers an account on the forum backend.
func (b *BackendProvider) SignUp(ctx context.Context, email, password, username, fullName string) (*domain.AuthResult, error) {
	resp, err := b.auth.Register(ctx, email, password, username, fullName)
	if err != nil {
		return nil, err
	}
	return b.result(resp, "Account created successfully!"), nil
}

// SignIn exchanges credentials for a backend bearer token.
func (b *BackendProvider) SignIn(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	resp, err := b.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return b.result(resp, "Signed in successfully!"), nil
}

// SignOut invalidates the current token server-side. The REST client attaches
// the stored token itself, so token is unused here beyond the guard.
func (b *BackendProvider) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrNotSignedIn
	}
	return b.auth.Logout(ctx)
}

// GetSession treats a successful profile fetch as proof the token is live.
func (b *BackendProvider) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrNotSignedIn
	}
	user, err := b.users.Profile(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.Session{Token: token, Source: domain.SourceBackend, User: user}, nil
}

// Refresh exchanges the current token for a fresh one. The REST client
// attaches the stored token to the request.
func (b *BackendProvider) Refresh(ctx context.Context) (*domain.AuthResult, error) {
	resp, err := b.auth.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return b.result(resp, "Token refreshed."), nil
}

// ForgotPassword asks the backend to email a reset token.
func (b *BackendProvider) ForgotPassword(ctx context.Context, email string) (string, error) {
	return b.auth.ForgotPassword(ctx, email)
}

// ResetPassword completes a reset with the token from the reset email.
func (b *BackendProvider) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	if token == "" {
		return "", domain.ErrNotSignedIn
	}
	return b.auth.ResetPassword(ctx, token, newPassword)
}

// UpdateProfile writes profile changes through the backend's user endpoint.
func (b *BackendProvider) UpdateProfile(ctx context.Context, token string, updates domain.ProfileUpdate) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrNotSignedIn
	}
	return b.users.UpdateProfile(ctx, updates)
}

func (b *BackendProvider) result(resp *api.AuthResponse, fallbackMsg string) *domain.AuthResult {
	msg := resp.Message
	if msg == "" {
		msg = fallbackMsg
	}
	return &domain.AuthResult{
		User:    resp.User,
		Token:   resp.Token,
		Source:  domain.SourceBackend,
		Message: msg,
	}
}
