package output

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fatih/color"

	"github.com/Sowjanyakambhampati/forumctl/internal/api"
	"github.com/Sowjanyakambhampati/forumctl/internal/auth"
	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// Exit code constants
const (
	ExitSuccess     = 0
	ExitGeneral     = 1
	ExitUsageError  = 2
	ExitAuthError   = 3
	ExitConfigError = 4
	ExitAPIError    = 5
)

// CLIError is a structured error with user-facing context
type CLIError struct {
	Summary    string
	Detail     string
	Suggestion string
	ExitCode   int
}

// Error implements the error interface, returning the summary
func (e *CLIError) Error() string {
	return e.Summary
}

// FromError classifies err into a CLIError with a suggestion the user can
// act on. Auth failures point at login, connectivity at config, and chain
// errors surface the per-provider detail.
func FromError(err error) *CLIError {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	var chain *auth.ChainError
	if errors.As(err, &chain) {
		return &CLIError{
			Summary:    chain.Error(),
			Detail:     chain.Detail(),
			Suggestion: "check your credentials, or run 'forumctl login' again",
			ExitCode:   ExitAuthError,
		}
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		out := &CLIError{Summary: apiErr.Message, ExitCode: ExitAPIError}
		switch apiErr.StatusCode {
		case http.StatusUnauthorized:
			out.Suggestion = "run 'forumctl login' to sign in"
			out.ExitCode = ExitAuthError
		case http.StatusForbidden:
			out.Suggestion = "this action needs a different account or role"
			out.ExitCode = ExitAuthError
		case http.StatusNotFound:
			out.Suggestion = "check the ID and try again"
		case http.StatusTooManyRequests:
			out.Suggestion = "wait a moment and retry"
		}
		return out
	}

	switch {
	case errors.Is(err, domain.ErrNotSignedIn):
		return &CLIError{
			Summary:    "you are not signed in",
			Suggestion: "run 'forumctl login' first",
			ExitCode:   ExitAuthError,
		}
	case errors.Is(err, domain.ErrBackendUnavailable):
		return &CLIError{
			Summary:    "the forum backend is unreachable",
			Detail:     err.Error(),
			Suggestion: "check api.base_url in .forumctl.yaml and your network connection",
			ExitCode:   ExitConfigError,
		}
	case errors.Is(err, domain.ErrIdentityUnavailable):
		return &CLIError{
			Summary:    "the identity provider is unreachable",
			Detail:     err.Error(),
			Suggestion: "check identity.public_url in .forumctl.yaml",
			ExitCode:   ExitConfigError,
		}
	}

	return &CLIError{Summary: err.Error(), ExitCode: ExitGeneral}
}

// FormatError prints a structured error message to stderr
func (p *Printer) FormatError(e *CLIError) {
	if p.useColors {
		color.New(color.FgRed, color.Bold).Fprintf(p.err, "Error: %s\n", e.Summary)
		if e.Detail != "" {
			fmt.Fprintf(p.err, "  Cause: %s\n", e.Detail)
		}
		if e.Suggestion != "" {
			color.New(color.FgCyan).Fprintf(p.err, "  Suggestion: %s\n", e.Suggestion)
		}
	} else {
		fmt.Fprintf(p.err, "[ERROR] %s\n", e.Summary)
		if e.Detail != "" {
			fmt.Fprintf(p.err, "  Cause: %s\n", e.Detail)
		}
		if e.Suggestion != "" {
			fmt.Fprintf(p.err, "  Suggestion: %s\n", e.Suggestion)
		}
	}
}
