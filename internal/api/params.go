package api

import (
	"net/url"
	"strconv"
)

// ListParams are the filter/sort/pagination options shared by listing
// endpoints. Zero values are omitted from the query string.
type ListParams struct {
	Page         int
	Limit        int
	Search       string
	Category     string
	Neighborhood string
	Status       string
	SortBy       string
}

// Values encodes the params as a query string.
func (p ListParams) Values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Neighborhood != "" {
		q.Set("neighborhood", p.Neighborhood)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	return q
}
