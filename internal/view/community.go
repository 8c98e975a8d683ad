package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Sowjanyakambhampati/forumctl/internal/api"
	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// CommunityPage is the community post listing.
type CommunityPage struct {
	Posts []domain.CommunityPost
}

// CommunityPostPage is one post with its comment thread.
type CommunityPostPage struct {
	Post     *domain.CommunityPost
	Comments []domain.CommunityComment
}

// CommunityList loads the community posts page.
func (v *View) CommunityList(ctx context.Context, params api.ListParams) (*CommunityPage, error) {
	posts, err := v.community.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return &CommunityPage{Posts: posts}, nil
}

// CommunityPost loads one post; a failing comment fetch leaves the thread
// empty rather than hiding the post.
func (v *View) CommunityPost(ctx context.Context, id string) (*CommunityPostPage, error) {
	post, err := v.community.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	page := &CommunityPostPage{Post: post}

	var g errgroup.Group
	g.Go(section(v, "community-post", "comments", func() error {
		comments, err := v.community.Comments(ctx, id, api.ListParams{})
		if err != nil {
			return err
		}
		page.Comments = comments
		return nil
	}))

	_ = g.Wait()
	return page, nil
}
