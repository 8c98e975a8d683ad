package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Sowjanyakambhampati/forumctl/internal/api"
	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// NeighborhoodsPage is the neighborhood directory.
type NeighborhoodsPage struct {
	Neighborhoods []domain.Neighborhood
}

// NeighborhoodPage is one neighborhood's profile with everything happening
// in it. Every section besides the profile is independently tolerant.
type NeighborhoodPage struct {
	Neighborhood *domain.Neighborhood
	Events       []domain.Event
	Listings     []domain.MarketplaceListing
	Posts        []domain.CommunityPost
	Members      []domain.User
}

// NeighborhoodList loads the directory, optionally narrowed by city or a
// search term.
func (v *View) NeighborhoodList(ctx context.Context, city, search string) (*NeighborhoodsPage, error) {
	hoods, err := v.neighborhoods.List(ctx, city, search)
	if err != nil {
		return nil, err
	}
	return &NeighborhoodsPage{Neighborhoods: hoods}, nil
}

// NeighborhoodDetail loads the profile and fans out over its activity
// sections concurrently. Sections that fail load empty.
func (v *View) NeighborhoodDetail(ctx context.Context, id string) (*NeighborhoodPage, error) {
	hood, err := v.neighborhoods.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	page := &NeighborhoodPage{Neighborhood: hood}

	var g errgroup.Group
	g.Go(section(v, "neighborhood", "events", func() error {
		events, err := v.neighborhoods.Events(ctx, id, api.ListParams{})
		if err != nil {
			return err
		}
		page.Events = events
		return nil
	}))
	g.Go(section(v, "neighborhood", "listings", func() error {
		listings, err := v.neighborhoods.Listings(ctx, id, api.ListParams{})
		if err != nil {
			return err
		}
		page.Listings = listings
		return nil
	}))
	g.Go(section(v, "neighborhood", "posts", func() error {
		posts, err := v.neighborhoods.Posts(ctx, id, api.ListParams{})
		if err != nil {
			return err
		}
		page.Posts = posts
		return nil
	}))
	g.Go(section(v, "neighborhood", "members", func() error {
		members, err := v.neighborhoods.Members(ctx, id, api.ListParams{})
		if err != nil {
			return err
		}
		page.Members = members
		return nil
	}))

	_ = g.Wait()
	return page, nil
}
