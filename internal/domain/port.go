package domain

// TokenSource yields the current bearer token, or "" when signed out.
// The HTTP client reads through this on every request.
type TokenSource interface {
	Token() string
}

// SessionStore is the persisted session cache plus its change broadcast.
// The auth shim is the only writer; views read and subscribe.
// Stored data is a UI convenience, never authorization proof.
type SessionStore interface {
	TokenSource

	// Current returns the cached user snapshot, which may be stale, or nil.
	Current() *User

	// Session returns the full cached session or ErrNoCachedSession.
	Session() (*Session, error)

	// Set persists the session atomically and notifies subscribers.
	Set(s *Session) error

	// Clear removes the persisted session and notifies subscribers with nil.
	Clear() error

	// Subscribe registers a session-changed listener. The returned func
	// cancels the subscription.
	Subscribe(fn func(*User)) (cancel func())
}
