package api

import (
	"context"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// MarketplaceAPI wraps the /marketplace endpoints.
type MarketplaceAPI struct {
	client *Client
}

// NewMarketplaceAPI creates the marketplace resource group.
func NewMarketplaceAPI(client *Client) *MarketplaceAPI {
	return &MarketplaceAPI{client: client}
}

// Listings returns listings matching the filter.
func (m *MarketplaceAPI) Listings(ctx context.Context, params ListParams) ([]domain.MarketplaceListing, error) {
	var out []domain.MarketplaceListing
	if err := m.client.Get(ctx, "/marketplace", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Listing returns one listing by ID.
func (m *MarketplaceAPI) Listing(ctx context.Context, id string) (*domain.MarketplaceListing, error) {
	var out domain.MarketplaceListing
	if err := m.client.Get(ctx, "/marketplace/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create publishes a new listing.
func (m *MarketplaceAPI) Create(ctx context.Context, listing domain.NewListing) (*domain.MarketplaceListing, error) {
	var out domain.MarketplaceListing
	if err := m.client.Post(ctx, "/marketplace", listing, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a listing the caller owns.
func (m *MarketplaceAPI) Delete(ctx context.Context, id string) error {
	return m.client.Delete(ctx, "/marketplace/"+id, nil)
}

// MyListings lists the caller's listings.
func (m *MarketplaceAPI) MyListings(ctx context.Context, params ListParams) ([]domain.MarketplaceListing, error) {
	var out []domain.MarketplaceListing
	if err := m.client.Get(ctx, "/marketplace/my-listings", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkSold transitions a listing to SOLD.
func (m *MarketplaceAPI) MarkSold(ctx context.Context, id string) error {
	return m.client.Post(ctx, "/marketplace/"+id+"/sold", nil, nil)
}

// MarkReserved transitions a listing to RESERVED.
func (m *MarketplaceAPI) MarkReserved(ctx context.Context, id string) error {
	return m.client.Post(ctx, "/marketplace/"+id+"/reserve", nil, nil)
}

// ToggleFavorite flips the caller's favorite mark on a listing.
func (m *MarketplaceAPI) ToggleFavorite(ctx context.Context, id string) error {
	return m.client.Post(ctx, "/marketplace/"+id+"/favorite", nil, nil)
}

// Favorites lists the caller's favorited listings.
func (m *MarketplaceAPI) Favorites(ctx context.Context, params ListParams) ([]domain.MarketplaceListing, error) {
	var out []domain.MarketplaceListing
	if err := m.client.Get(ctx, "/marketplace/favorites", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendRequest sends a purchase request to the seller.
func (m *MarketplaceAPI) SendRequest(ctx context.Context, id, message string) (*domain.MarketplaceRequest, error) {
	body := map[string]string{}
	if message != "" {
		body["message"] = message
	}
	var out domain.MarketplaceRequest
	if err := m.client.Post(ctx, "/marketplace/"+id+"/request", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Requests lists purchase requests on a listing the caller owns.
func (m *MarketplaceAPI) Requests(ctx context.Context, id string) ([]domain.MarketplaceRequest, error) {
	var out []domain.MarketplaceRequest
	if err := m.client.Get(ctx, "/marketplace/"+id+"/requests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RespondToRequest accepts or rejects a purchase request.
func (m *MarketplaceAPI) RespondToRequest(ctx context.Context, listingID, requestID string, status domain.RequestStatus) error {
	body := map[string]string{"status": string(status)}
	return m.client.Put(ctx, "/marketplace/"+listingID+"/requests/"+requestID, body, nil)
}

// ContactSeller sends a message to a listing's seller.
func (m *MarketplaceAPI) ContactSeller(ctx context.Context, id, message string) error {
	return m.client.Post(ctx, "/marketplace/"+id+"/contact", map[string]string{"message": message}, nil)
}

// Categories lists marketplace categories.
func (m *MarketplaceAPI) Categories(ctx context.Context) ([]domain.MarketplaceCategory, error) {
	var out []domain.MarketplaceCategory
	if err := m.client.Get(ctx, "/marketplace/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
