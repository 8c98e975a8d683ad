package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Sowjanyakambhampati/forumctl/internal/api"
	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// HomePage is the dashboard: who is signed in plus a slice of everything
// happening on the platform. Every section is optional.
type HomePage struct {
	User           *domain.User
	UpcomingEvents []domain.Event
	RecentPosts    []domain.CommunityPost
	NewListings    []domain.MarketplaceListing
	UnreadCount    int
	Stats          *api.PlatformStats
}

// Home loads the dashboard. All sections load concurrently and any of them
// may come back empty; the page itself never fails.
func (v *View) Home(ctx context.Context, limit int) *HomePage {
	page := &HomePage{User: v.auth.CurrentUser(ctx)}

	params := api.ListParams{Limit: limit}

	var g errgroup.Group
	g.Go(section(v, "home", "events", func() error {
		events, err := v.events.List(ctx, params)
		if err != nil {
			return err
		}
		page.UpcomingEvents = events
		return nil
	}))
	g.Go(section(v, "home", "posts", func() error {
		posts, err := v.community.List(ctx, params)
		if err != nil {
			return err
		}
		page.RecentPosts = posts
		return nil
	}))
	g.Go(section(v, "home", "listings", func() error {
		listings, err := v.market.Listings(ctx, params)
		if err != nil {
			return err
		}
		page.NewListings = listings
		return nil
	}))
	g.Go(section(v, "home", "stats", func() error {
		stats, err := v.analytics.Stats(ctx)
		if err != nil {
			return err
		}
		page.Stats = stats
		return nil
	}))
	if page.User != nil {
		g.Go(section(v, "home", "notifications", func() error {
			count, err := v.notifications.UnreadCount(ctx)
			if err != nil {
				return err
			}
			page.UnreadCount = count
			return nil
		}))
	}

	_ = g.Wait()
	return page
}
