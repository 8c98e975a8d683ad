package domain

// SessionSource records which backend issued the current token.
type SessionSource string

const (
	SourceBackend  SessionSource = "backend"
	SourceIdentity SessionSource = "identity-provider"
)

// Session pairs a bearer token with the User it authorizes, plus the token's
// provenance. At most one session is current at a time; when both backends
// produce one within a single operation the primary backend's token wins.
type Session struct {
	Token  string        `json:"token"`
	Source SessionSource `json:"source"`
	User   *User         `json:"user"`
}

// AuthResult is what sign-up and sign-in hand back to the caller.
type AuthResult struct {
	User    *User
	Token   string
	Source  SessionSource
	Message string
}
