package domain

// Neighborhood is a geographic community area.
type Neighborhood struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode,omitempty"`
	Description  string `json:"description,omitempty"`
	MemberCount  int    `json:"memberCount,omitempty"`
	EventCount   int    `json:"eventCount,omitempty"`
	ListingCount int    `json:"listingCount,omitempty"`
	PostCount    int    `json:"postCount,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}
