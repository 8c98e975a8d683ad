package api

import (
	"context"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// UsersAPI wraps the /users endpoints.
type UsersAPI struct {
	client *Client
}

// NewUsersAPI creates the users resource group.
func NewUsersAPI(client *Client) *UsersAPI {
	return &UsersAPI{client: client}
}

// Profile fetches the authenticated user's profile.
func (u *UsersAPI) Profile(ctx context.Context) (*domain.User, error) {
	var out domain.User
	if err := u.client.Get(ctx, "/users/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfileOf fetches another user's public profile.
func (u *UsersAPI) ProfileOf(ctx context.Context, userID string) (*domain.User, error) {
	var out domain.User
	if err := u.client.Get(ctx, "/users/"+userID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile changes the authenticated user's profile fields.
func (u *UsersAPI) UpdateProfile(ctx context.Context, updates domain.ProfileUpdate) (*domain.User, error) {
	var out domain.User
	if err := u.client.Put(ctx, "/users/profile", updates, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
