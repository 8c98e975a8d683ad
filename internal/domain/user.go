package domain

import "time"

// Role classifies a user's privilege level as reported by the backend.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// User is the authenticated principal as the client sees it: a read-through
// projection of whichever backend answered most recently. The client never
// decides identity; it only caches and displays it.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username,omitempty"`
	FullName  string    `json:"fullName,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Role      Role      `json:"role,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Location  string    `json:"location,omitempty"`
	Website   string    `json:"website,omitempty"`
	Rating    float64   `json:"rating,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// ProfileUpdate carries the fields a user may change on their own profile.
type ProfileUpdate struct {
	Username  string `json:"username,omitempty" validate:"omitempty,min=3,max=32"`
	FullName  string `json:"fullName,omitempty" validate:"omitempty,max=100"`
	AvatarURL string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	Bio       string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Location  string `json:"location,omitempty" validate:"omitempty,max=100"`
	Website   string `json:"website,omitempty" validate:"omitempty,url"`
}
