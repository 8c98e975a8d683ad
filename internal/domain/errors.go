package domain

import "errors"

// Authentication errors.
var (
	ErrNotSignedIn     = errors.New("not signed in")
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionInactive = errors.New("session is not active")
	ErrMissingIdentity = errors.New("missing identity in session")
	ErrAuthFailed      = errors.New("authentication failed")
)

// External service errors.
var (
	ErrBackendUnavailable  = errors.New("backend API unavailable")
	ErrIdentityUnavailable = errors.New("identity provider unavailable")
)

// Session store errors.
var (
	ErrNoCachedSession = errors.New("no cached session")
)
