// Package auth reconciles two authentication backends behind one API: the
// community forum backend issues the tokens the REST client uses, and an
// identity provider covers sign-in when the backend cannot. Callers talk to
// the Manager; which backend actually served a request is recorded on the
// session but otherwise invisible.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// Provider is one authentication backend. The forum backend and the Kratos
// gateway both satisfy it; the Manager tries them in declared order.
type Provider interface {
	// Name identifies the provider in logs and chain errors.
	Name() string

	SignUp(ctx context.Context, email, password, username, fullName string) (*domain.AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*domain.AuthResult, error)

	// SignOut invalidates token on this provider. Tokens issued by another
	// provider produce an error, which the Manager tolerates.
	SignOut(ctx context.Context, token string) error

	// GetSession resolves token to a live session, or an error when the
	// provider does not recognize it.
	GetSession(ctx context.Context, token string) (*domain.Session, error)

	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) (string, error)
	UpdateProfile(ctx context.Context, token string, updates domain.ProfileUpdate) (*domain.User, error)
}

// Attempt records one provider's failure inside a chain.
type Attempt struct {
	Provider string
	Err      error
}

// ChainError reports that every provider in the chain failed. Its message is
// the primary provider's failure, which is what users act on; the remaining
// attempts ride along for logs and errors.Is checks.
type ChainError struct {
	Op       string
	Attempts []Attempt
}

// Error returns the first attempt's message so the primary backend's
// diagnosis wins over the fallback's.
func (e *ChainError) Error() string {
	if len(e.Attempts) == 0 {
		return fmt.Sprintf("%s: no providers configured", e.Op)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Attempts[0].Err)
}

// Unwrap exposes every attempt for errors.Is and errors.As.
func (e *ChainError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		errs = append(errs, a.Err)
	}
	return errs
}

// Detail lists every attempt, one per line, for verbose output.
func (e *ChainError) Detail() string {
	var b strings.Builder
	for i, a := range e.Attempts {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %v", a.Provider, a.Err)
	}
	return b.String()
}
