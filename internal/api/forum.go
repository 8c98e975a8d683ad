package api

import (
	"context"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// ThreadsAPI wraps the /threads and /categories endpoints.
type ThreadsAPI struct {
	client *Client
}

// NewThreadsAPI creates the threads resource group.
func NewThreadsAPI(client *Client) *ThreadsAPI {
	return &ThreadsAPI{client: client}
}

// Categories lists forum categories.
func (t *ThreadsAPI) Categories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := t.client.Get(ctx, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns threads matching the filter.
func (t *ThreadsAPI) List(ctx context.Context, params ListParams) ([]domain.Thread, error) {
	var out []domain.Thread
	if err := t.client.Get(ctx, "/threads", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one thread by ID.
func (t *ThreadsAPI) Get(ctx context.Context, id string) (*domain.Thread, error) {
	var out domain.Thread
	if err := t.client.Get(ctx, "/threads/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create starts a new thread.
func (t *ThreadsAPI) Create(ctx context.Context, title, content, categoryID string) (*domain.Thread, error) {
	body := map[string]string{"title": title, "content": content, "categoryId": categoryID}
	var out domain.Thread
	if err := t.client.Post(ctx, "/threads", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Vote casts an up or down vote on a thread.
func (t *ThreadsAPI) Vote(ctx context.Context, id, direction string) error {
	return t.client.Post(ctx, "/threads/"+id+"/vote", map[string]string{"type": direction}, nil)
}

// PostsAPI wraps the /posts endpoints (thread replies).
type PostsAPI struct {
	client *Client
}

// NewPostsAPI creates the posts resource group.
func NewPostsAPI(client *Client) *PostsAPI {
	return &PostsAPI{client: client}
}

// ByThread lists a thread's replies.
func (p *PostsAPI) ByThread(ctx context.Context, threadID string, params ListParams) ([]domain.Post, error) {
	var out []domain.Post
	if err := p.client.Get(ctx, "/threads/"+threadID+"/posts", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts a reply, optionally nested under a parent.
func (p *PostsAPI) Create(ctx context.Context, threadID, content, parentID string) (*domain.Post, error) {
	body := map[string]string{"threadId": threadID, "content": content}
	if parentID != "" {
		body["parentId"] = parentID
	}
	var out domain.Post
	if err := p.client.Post(ctx, "/posts", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkAsAnswer flags a reply as the thread's accepted answer.
func (p *PostsAPI) MarkAsAnswer(ctx context.Context, id string) error {
	return p.client.Post(ctx, "/posts/"+id+"/answer", nil, nil)
}
