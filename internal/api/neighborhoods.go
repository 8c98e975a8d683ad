package api

import (
	"context"
	"net/url"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// NeighborhoodsAPI wraps the /neighborhoods endpoints.
type NeighborhoodsAPI struct {
	client *Client
}

// NewNeighborhoodsAPI creates the neighborhoods resource group.
func NewNeighborhoodsAPI(client *Client) *NeighborhoodsAPI {
	return &NeighborhoodsAPI{client: client}
}

// List returns neighborhoods, optionally filtered by city or search term.
func (n *NeighborhoodsAPI) List(ctx context.Context, city, search string) ([]domain.Neighborhood, error) {
	q := url.Values{}
	if city != "" {
		q.Set("city", city)
	}
	if search != "" {
		q.Set("search", search)
	}
	var out []domain.Neighborhood
	if err := n.client.Get(ctx, "/neighborhoods", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one neighborhood by ID.
func (n *NeighborhoodsAPI) Get(ctx context.Context, id string) (*domain.Neighborhood, error) {
	var out domain.Neighborhood
	if err := n.client.Get(ctx, "/neighborhoods/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Events lists a neighborhood's events.
func (n *NeighborhoodsAPI) Events(ctx context.Context, id string, params ListParams) ([]domain.Event, error) {
	var out []domain.Event
	if err := n.client.Get(ctx, "/neighborhoods/"+id+"/events", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Listings lists a neighborhood's marketplace listings.
func (n *NeighborhoodsAPI) Listings(ctx context.Context, id string, params ListParams) ([]domain.MarketplaceListing, error) {
	var out []domain.MarketplaceListing
	if err := n.client.Get(ctx, "/neighborhoods/"+id+"/listings", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Posts lists a neighborhood's community posts.
func (n *NeighborhoodsAPI) Posts(ctx context.Context, id string, params ListParams) ([]domain.CommunityPost, error) {
	var out []domain.CommunityPost
	if err := n.client.Get(ctx, "/neighborhoods/"+id+"/posts", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Members lists a neighborhood's members.
func (n *NeighborhoodsAPI) Members(ctx context.Context, id string, params ListParams) ([]domain.User, error) {
	var out []domain.User
	if err := n.client.Get(ctx, "/neighborhoods/"+id+"/members", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Join adds the caller to a neighborhood.
func (n *NeighborhoodsAPI) Join(ctx context.Context, id string) error {
	return n.client.Post(ctx, "/neighborhoods/"+id+"/join", nil, nil)
}

// Leave removes the caller from a neighborhood.
func (n *NeighborhoodsAPI) Leave(ctx context.Context, id string) error {
	return n.client.Delete(ctx, "/neighborhoods/"+id+"/leave", nil)
}
