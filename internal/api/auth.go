package api

import (
	"context"
	"strings"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// AuthResponse is the backend's answer to registration, login and refresh.
type AuthResponse struct {
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
	Message string       `json:"message,omitempty"`
}

// AuthAPI wraps the /auth endpoints.
type AuthAPI struct {
	client *Client
}

// NewAuthAPI creates the auth resource group.
func NewAuthAPI(client *Client) *AuthAPI {
	return &AuthAPI{client: client}
}

// Register creates an account. An empty username defaults to the local part
// of the email, matching what the web client sends.
func (a *AuthAPI) Register(ctx context.Context, email, password, username, fullName string) (*AuthResponse, error) {
	if username == "" {
		username, _, _ = strings.Cut(email, "@")
	}
	body := map[string]string{
		"email":    email,
		"password": password,
		"username": username,
		"fullName": fullName,
	}
	var out AuthResponse
	if err := a.client.Post(ctx, "/auth/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a bearer token.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var out AuthResponse
	if err := a.client.Post(ctx, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the current session server-side.
func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.client.Post(ctx, "/auth/logout", nil, nil)
}

// Refresh exchanges the current token for a fresh one.
func (a *AuthAPI) Refresh(ctx context.Context) (*AuthResponse, error) {
	var out AuthResponse
	if err := a.client.Post(ctx, "/auth/refresh", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword requests a reset email.
func (a *AuthAPI) ForgotPassword(ctx context.Context, email string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := a.client.Post(ctx, "/auth/forgot-password", map[string]string{"email": email}, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ResetPassword completes a reset with the token from the email.
func (a *AuthAPI) ResetPassword(ctx context.Context, token, password string) (string, error) {
	body := map[string]string{"token": token, "password": password}
	var out struct {
		Message string `json:"message"`
	}
	if err := a.client.Post(ctx, "/auth/reset-password", body, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// VerifyEmail confirms an address with the emailed token.
func (a *AuthAPI) VerifyEmail(ctx context.Context, token string) error {
	return a.client.Post(ctx, "/auth/verify-email", map[string]string{"token": token}, nil)
}
