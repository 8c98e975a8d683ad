package domain

// ListingCondition describes the physical state of a marketplace item.
type ListingCondition string

const (
	ConditionNew     ListingCondition = "NEW"
	ConditionLikeNew ListingCondition = "LIKE_NEW"
	ConditionGood    ListingCondition = "GOOD"
	ConditionUsed    ListingCondition = "USED"
	ConditionWorn    ListingCondition = "WORN"
)

// ListingStatus is the lifecycle state of a listing; transitions happen
// server-side.
type ListingStatus string

const (
	ListingActive   ListingStatus = "ACTIVE"
	ListingReserved ListingStatus = "RESERVED"
	ListingSold     ListingStatus = "SOLD"
	ListingClosed   ListingStatus = "CLOSED"
)

// MarketplaceCategory groups listings.
type MarketplaceCategory struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ListingCount int    `json:"listingCount,omitempty"`
}

// MarketplaceListing is an item offered within a neighborhood.
type MarketplaceListing struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Price          float64          `json:"price"`
	IsFree         bool             `json:"isFree,omitempty"`
	CategoryID     string           `json:"categoryId,omitempty"`
	CategoryName   string           `json:"categoryName,omitempty"`
	Location       string           `json:"location"`
	Condition      ListingCondition `json:"condition"`
	Status         ListingStatus    `json:"status"`
	Images         []string         `json:"images,omitempty"`
	Tags           []string         `json:"tags,omitempty"`
	Seller         *User            `json:"seller,omitempty"`
	SellerID       string           `json:"sellerId,omitempty"`
	NeighborhoodID string           `json:"neighborhoodId,omitempty"`
	IsFavorited    bool             `json:"isFavorited,omitempty"`
	FavoriteCount  int              `json:"favoriteCount,omitempty"`
	ViewCount      int              `json:"viewCount,omitempty"`
	CreatedAt      string           `json:"createdAt,omitempty"`
}

// NewListing carries the fields for creating a marketplace listing.
type NewListing struct {
	Title          string           `json:"title" validate:"required,min=3,max=200"`
	Description    string           `json:"description" validate:"required"`
	Price          float64          `json:"price" validate:"min=0"`
	IsFree         bool             `json:"isFree"`
	CategoryID     string           `json:"categoryId,omitempty"`
	Location       string           `json:"location" validate:"required"`
	Condition      ListingCondition `json:"condition" validate:"required,oneof=NEW LIKE_NEW GOOD USED WORN"`
	Images         []string         `json:"images,omitempty"`
	Tags           []string         `json:"tags,omitempty"`
	NeighborhoodID string           `json:"neighborhoodId,omitempty"`
}

// RequestStatus is the seller's answer to a purchase request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestAccepted RequestStatus = "ACCEPTED"
	RequestRejected RequestStatus = "REJECTED"
)

// MarketplaceRequest is a buyer's purchase request on a listing.
type MarketplaceRequest struct {
	ID        string        `json:"id"`
	ListingID string        `json:"listingId"`
	Buyer     *User         `json:"buyer,omitempty"`
	Message   string        `json:"message,omitempty"`
	Status    RequestStatus `json:"status"`
	CreatedAt string        `json:"createdAt,omitempty"`
}
