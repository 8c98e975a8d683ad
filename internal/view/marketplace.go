package view

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Sowjanyakambhampati/forumctl/internal/api"
	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// MarketplacePage is the listing browser with its category sidebar.
type MarketplacePage struct {
	Listings   []domain.MarketplaceListing
	Categories []domain.MarketplaceCategory
}

// ListingPage is one listing; purchase requests show only to the seller, so
// that section is tolerant of authorization failures.
type ListingPage struct {
	Listing  *domain.MarketplaceListing
	Requests []domain.MarketplaceRequest
}

// MarketList loads the marketplace browser.
func (v *View) MarketList(ctx context.Context, params api.ListParams) (*MarketplacePage, error) {
	page := &MarketplacePage{}

	var g errgroup.Group
	g.Go(func() error {
		listings, err := v.market.Listings(ctx, params)
		if err != nil {
			return err
		}
		page.Listings = listings
		return nil
	})
	g.Go(section(v, "market", "categories", func() error {
		cats, err := v.market.Categories(ctx)
		if err != nil {
			return err
		}
		page.Categories = cats
		return nil
	}))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return page, nil
}

// ListingDetail loads one listing and, when permitted, its requests.
func (v *View) ListingDetail(ctx context.Context, id string) (*ListingPage, error) {
	listing, err := v.market.Listing(ctx, id)
	if err != nil {
		return nil, err
	}
	page := &ListingPage{Listing: listing}

	var g errgroup.Group
	g.Go(section(v, "listing", "requests", func() error {
		reqs, err := v.market.Requests(ctx, id)
		if err != nil {
			return err
		}
		page.Requests = reqs
		return nil
	}))

	_ = g.Wait()
	return page, nil
}
