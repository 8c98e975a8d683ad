package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Sowjanyakambhampati/forumctl/internal/api"
	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// ThreadsPage is the discussion thread listing with its category sidebar.
type ThreadsPage struct {
	Threads    []domain.Thread
	Categories []domain.Category
}

// ThreadPage is one thread with its replies.
type ThreadPage struct {
	Thread *domain.Thread
	Posts  []domain.Post
}

// ThreadList loads the threads page. The listing itself is fatal; the
// category sidebar is not.
func (v *View) ThreadList(ctx context.Context, params api.ListParams) (*ThreadsPage, error) {
	threads, err := v.threads.List(ctx, params)
	if err != nil {
		return nil, err
	}
	page := &ThreadsPage{Threads: threads}

	var g errgroup.Group
	g.Go(section(v, "threads", "categories", func() error {
		categories, err := v.threads.Categories(ctx)
		if err != nil {
			return err
		}
		page.Categories = categories
		return nil
	}))

	_ = g.Wait()
	return page, nil
}

// ThreadDetail loads one thread; failing to fetch the replies leaves the
// thread body on its own rather than hiding it.
func (v *View) ThreadDetail(ctx context.Context, id string) (*ThreadPage, error) {
	thread, err := v.threads.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	page := &ThreadPage{Thread: thread}

	var g errgroup.Group
	g.Go(section(v, "thread", "posts", func() error {
		posts, err := v.posts.ByThread(ctx, id, api.ListParams{})
		if err != nil {
			return err
		}
		page.Posts = posts
		return nil
	}))

	_ = g.Wait()
	return page, nil
}
