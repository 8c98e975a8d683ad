package api

import (
	"context"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// CommunityAPI wraps the /community-posts endpoints.
type CommunityAPI struct {
	client *Client
}

// NewCommunityAPI creates the community-posts resource group.
func NewCommunityAPI(client *Client) *CommunityAPI {
	return &CommunityAPI{client: client}
}

// List returns community posts matching the filter.
func (c *CommunityAPI) List(ctx context.Context, params ListParams) ([]domain.CommunityPost, error) {
	var out []domain.CommunityPost
	if err := c.client.Get(ctx, "/community-posts", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one post by ID.
func (c *CommunityAPI) Get(ctx context.Context, id string) (*domain.CommunityPost, error) {
	var out domain.CommunityPost
	if err := c.client.Get(ctx, "/community-posts/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create publishes a new post.
func (c *CommunityAPI) Create(ctx context.Context, post domain.NewCommunityPost) (*domain.CommunityPost, error) {
	var out domain.CommunityPost
	if err := c.client.Post(ctx, "/community-posts", post, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a post the caller owns.
func (c *CommunityAPI) Delete(ctx context.Context, id string) error {
	return c.client.Delete(ctx, "/community-posts/"+id, nil)
}

// Comments lists a post's comments.
func (c *CommunityAPI) Comments(ctx context.Context, id string, params ListParams) ([]domain.CommunityComment, error) {
	var out []domain.CommunityComment
	if err := c.client.Get(ctx, "/community-posts/"+id+"/comments", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddComment posts a comment, optionally as a reply.
func (c *CommunityAPI) AddComment(ctx context.Context, id, content, parentID string) (*domain.CommunityComment, error) {
	body := map[string]string{"content": content}
	if parentID != "" {
		body["parentId"] = parentID
	}
	var out domain.CommunityComment
	if err := c.client.Post(ctx, "/community-posts/"+id+"/comments", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Like marks a post liked by the caller.
func (c *CommunityAPI) Like(ctx context.Context, id string) error {
	return c.client.Post(ctx, "/community-posts/"+id+"/like", nil, nil)
}

// Unlike removes the caller's like.
func (c *CommunityAPI) Unlike(ctx context.Context, id string) error {
	return c.client.Delete(ctx, "/community-posts/"+id+"/like", nil)
}

// Pin pins a post (moderator/admin only, enforced server-side).
func (c *CommunityAPI) Pin(ctx context.Context, id string) error {
	return c.client.Post(ctx, "/community-posts/"+id+"/pin", nil, nil)
}

// Unpin unpins a post.
func (c *CommunityAPI) Unpin(ctx context.Context, id string) error {
	return c.client.Delete(ctx, "/community-posts/"+id+"/pin", nil)
}

// MyPosts lists the caller's posts.
func (c *CommunityAPI) MyPosts(ctx context.Context, params ListParams) ([]domain.CommunityPost, error) {
	var out []domain.CommunityPost
	if err := c.client.Get(ctx, "/community-posts/my-posts", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}
