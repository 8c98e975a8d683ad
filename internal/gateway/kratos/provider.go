package kratos

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	kratosclient "github.com/ory/kratos-client-go"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// Provider authenticates against Ory Kratos using native self-service
// flows. It is the fallback in the auth chain; the primary REST backend is
// always tried first.
type Provider struct {
	client    *kratosclient.APIClient
	publicURL string
	logger    *slog.Logger
}

// Name identifies this provider in chain errors and logs.
func (p *Provider) Name() string {
	return "kratos"
}

// SignUp runs a native registration flow. Kratos may withhold the session
// until the email address is verified; in that case the result carries no
// token and a confirmation message instead.
func (p *Provider) SignUp(ctx context.Context, email, password, username, fullName string) (*domain.AuthResult, error) {
	flow, resp, err := p.client.FrontendAPI.CreateNativeRegistrationFlow(ctx).Execute()
	if err != nil {
		return nil, p.wrapError("registration flow create", err, resp)
	}

	if username == "" {
		username, _, _ = strings.Cut(email, "@")
	}
	traits := map[string]interface{}{
		"email":    email,
		"username": username,
	}
	if fullName != "" {
		traits["name"] = fullName
	}

	method := kratosclient.UpdateRegistrationFlowWithPasswordMethod{
		Method:   "password",
		Password: password,
		Traits:   traits,
	}
	result, resp, err := p.client.FrontendAPI.UpdateRegistrationFlow(ctx).
		Flow(flow.Id).
		UpdateRegistrationFlowBody(
			kratosclient.UpdateRegistrationFlowWithPasswordMethodAsUpdateRegistrationFlowBody(&method),
		).
		Execute()
	if err != nil {
		return nil, p.wrapError("registration flow submit", err, resp)
	}

	user := mapIdentity(&result.Identity)
	out := &domain.AuthResult{
		User:    user,
		Source:  domain.SourceIdentity,
		Message: "Please check your email to confirm your account.",
	}
	if result.SessionToken != nil && *result.SessionToken != "" {
		out.Token = *result.SessionToken
		out.Message = "Account created successfully!"
	}

	p.logger.Info("registered via identity provider", "user_id", user.ID, "session_issued", out.Token != "")
	return out, nil
}

// SignIn runs a native login flow and returns the issued session token.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	flow, resp, err := p.client.FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		return nil, p.wrapError("login flow create", err, resp)
	}

	method := kratosclient.UpdateLoginFlowWithPasswordMethod{
		Method:     "password",
		Identifier: email,
		Password:   password,
	}
	result, resp, err := p.client.FrontendAPI.UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(
			kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&method),
		).
		Execute()
	if err != nil {
		return nil, p.wrapError("login flow submit", err, resp)
	}

	if result.SessionToken == nil || *result.SessionToken == "" {
		return nil, domain.ErrMissingIdentity
	}
	if result.Session.Identity == nil {
		return nil, domain.ErrMissingIdentity
	}

	user := mapIdentity(result.Session.Identity)
	p.logger.Info("signed in via identity provider", "user_id", user.ID)
	return &domain.AuthResult{
		User:   user,
		Token:  *result.SessionToken,
		Source: domain.SourceIdentity,
	}, nil
}

// SignOut revokes the session token. Callers treat failures as advisory.
func (p *Provider) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	body := kratosclient.PerformNativeLogoutBody{SessionToken: token}
	resp, err := p.client.FrontendAPI.PerformNativeLogout(ctx).
		PerformNativeLogoutBody(body).
		Execute()
	if err != nil {
		return p.wrapError("native logout", err, resp)
	}
	return nil
}

// GetSession checks whether the token still maps to an active Kratos
// session and returns the mapped user.
func (p *Provider) GetSession(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}

	sess, resp, err := p.client.FrontendAPI.ToSession(ctx).XSessionToken(token).Execute()
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, domain.ErrSessionNotFound
		}
		return nil, p.wrapError("to session", err, resp)
	}
	if sess.Active != nil && !*sess.Active {
		return nil, domain.ErrSessionInactive
	}
	if sess.Identity == nil {
		return nil, domain.ErrMissingIdentity
	}

	return &domain.Session{
		Token:  token,
		Source: domain.SourceIdentity,
		User:   mapIdentity(sess.Identity),
	}, nil
}

// ForgotPassword starts a recovery flow that emails a code to the address.
func (p *Provider) ForgotPassword(ctx context.Context, email string) (string, error) {
	flow, resp, err := p.client.FrontendAPI.CreateNativeRecoveryFlow(ctx).Execute()
	if err != nil {
		return "", p.wrapError("recovery flow create", err, resp)
	}

	method := kratosclient.UpdateRecoveryFlowWithCodeMethod{
		Email:  &email,
		Method: "code",
	}
	_, resp, err = p.client.FrontendAPI.UpdateRecoveryFlow(ctx).
		Flow(flow.Id).
		UpdateRecoveryFlowBody(
			kratosclient.UpdateRecoveryFlowWithCodeMethodAsUpdateRecoveryFlowBody(&method),
		).
		Execute()
	if err != nil {
		return "", p.wrapError("recovery flow submit", err, resp)
	}
	return "Password reset email sent. Please check your inbox.", nil
}

// ResetPassword changes the password through a settings flow. Kratos needs a
// live session for this, so token here is the session token, not an emailed
// reset token.
func (p *Provider) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	if token == "" {
		return "", domain.ErrNotSignedIn
	}

	flow, resp, err := p.client.FrontendAPI.CreateNativeSettingsFlow(ctx).XSessionToken(token).Execute()
	if err != nil {
		return "", p.wrapError("settings flow create", err, resp)
	}

	method := kratosclient.UpdateSettingsFlowWithPasswordMethod{
		Method:   "password",
		Password: newPassword,
	}
	_, resp, err = p.client.FrontendAPI.UpdateSettingsFlow(ctx).
		Flow(flow.Id).
		XSessionToken(token).
		UpdateSettingsFlowBody(
			kratosclient.UpdateSettingsFlowWithPasswordMethodAsUpdateSettingsFlowBody(&method),
		).
		Execute()
	if err != nil {
		return "", p.wrapError("settings flow submit", err, resp)
	}
	return "Password updated successfully.", nil
}

// UpdateProfile rewrites the identity traits through a settings flow and
// returns the updated user.
func (p *Provider) UpdateProfile(ctx context.Context, token string, updates domain.ProfileUpdate) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrNotSignedIn
	}

	flow, resp, err := p.client.FrontendAPI.CreateNativeSettingsFlow(ctx).XSessionToken(token).Execute()
	if err != nil {
		return nil, p.wrapError("settings flow create", err, resp)
	}

	traits := traitsFrom(flow.Identity.Traits)
	if updates.Username != "" {
		traits["username"] = updates.Username
	}
	if updates.FullName != "" {
		traits["name"] = updates.FullName
	}
	if updates.AvatarURL != "" {
		traits["avatar_url"] = updates.AvatarURL
	}

	method := kratosclient.UpdateSettingsFlowWithProfileMethod{
		Method: "profile",
		Traits: traits,
	}
	result, resp, err := p.client.FrontendAPI.UpdateSettingsFlow(ctx).
		Flow(flow.Id).
		XSessionToken(token).
		UpdateSettingsFlowBody(
			kratosclient.UpdateSettingsFlowWithProfileMethodAsUpdateSettingsFlowBody(&method),
		).
		Execute()
	if err != nil {
		return nil, p.wrapError("settings flow submit", err, resp)
	}

	return mapIdentity(&result.Identity), nil
}

// OAuthURL returns the browser URL that starts an OIDC login with the given
// third-party provider (google or github). The CLI hands this to the user;
// the flow completes in a browser.
func (p *Provider) OAuthURL(provider string) string {
	q := url.Values{}
	q.Set("return_to", p.publicURL)
	q.Set("via", provider)
	return p.publicURL + "/self-service/login/browser?" + q.Encode()
}

// wrapError classifies a Kratos failure: auth rejections keep their
// sentinel, everything else counts as the provider being unavailable.
func (p *Provider) wrapError(op string, err error, resp *http.Response) error {
	if resp != nil {
		p.logger.Error("kratos request failed", "op", op, "status", resp.StatusCode, "error", err)
		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%w: %s", domain.ErrAuthFailed, kratosMessage(err))
		}
		return fmt.Errorf("%w: status %d", domain.ErrIdentityUnavailable, resp.StatusCode)
	}
	p.logger.Error("kratos unreachable", "op", op, "error", err)
	return fmt.Errorf("%w: %w", domain.ErrIdentityUnavailable, err)
}

// kratosMessage extracts something readable from the SDK's error type.
func kratosMessage(err error) string {
	var openAPIErr *kratosclient.GenericOpenAPIError
	if errors.As(err, &openAPIErr) {
		if msg := string(openAPIErr.Body()); msg != "" && len(msg) < 300 {
			return msg
		}
	}
	return err.Error()
}
