package api

import (
	"context"
	"net/url"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// EventsAPI wraps the /events endpoints.
type EventsAPI struct {
	client *Client
}

// NewEventsAPI creates the events resource group.
func NewEventsAPI(client *Client) *EventsAPI {
	return &EventsAPI{client: client}
}

// List returns events matching the filter.
func (e *EventsAPI) List(ctx context.Context, params ListParams) ([]domain.Event, error) {
	var out []domain.Event
	if err := e.client.Get(ctx, "/events", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one event by ID.
func (e *EventsAPI) Get(ctx context.Context, id string) (*domain.Event, error) {
	var out domain.Event
	if err := e.client.Get(ctx, "/events/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create publishes a new event.
func (e *EventsAPI) Create(ctx context.Context, ev domain.NewEvent) (*domain.Event, error) {
	var out domain.Event
	if err := e.client.Post(ctx, "/events", ev, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an event the caller owns.
func (e *EventsAPI) Delete(ctx context.Context, id string) error {
	return e.client.Delete(ctx, "/events/"+id, nil)
}

// Register signs the caller up for an event. Capacity and waitlist placement
// are decided server-side and reflected in the returned registration.
func (e *EventsAPI) Register(ctx context.Context, id, notes string) (*domain.EventRegistration, error) {
	body := map[string]string{}
	if notes != "" {
		body["notes"] = notes
	}
	var out domain.EventRegistration
	if err := e.client.Post(ctx, "/events/"+id+"/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Unregister cancels the caller's registration.
func (e *EventsAPI) Unregister(ctx context.Context, id string) error {
	return e.client.Delete(ctx, "/events/"+id+"/register", nil)
}

// Attendees lists an event's registrations.
func (e *EventsAPI) Attendees(ctx context.Context, id string, params ListParams) ([]domain.EventRegistration, error) {
	var out []domain.EventRegistration
	if err := e.client.Get(ctx, "/events/"+id+"/attendees", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Comments lists an event's comments.
func (e *EventsAPI) Comments(ctx context.Context, id string, params ListParams) ([]domain.EventComment, error) {
	var out []domain.EventComment
	if err := e.client.Get(ctx, "/events/"+id+"/comments", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddComment posts a comment, optionally as a reply.
func (e *EventsAPI) AddComment(ctx context.Context, id, content, parentID string) (*domain.EventComment, error) {
	body := map[string]string{"content": content}
	if parentID != "" {
		body["parentId"] = parentID
	}
	var out domain.EventComment
	if err := e.client.Post(ctx, "/events/"+id+"/comments", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Categories lists event categories.
func (e *EventsAPI) Categories(ctx context.Context) ([]domain.EventCategory, error) {
	var out []domain.EventCategory
	if err := e.client.Get(ctx, "/events/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyRegistrations lists the caller's registrations, optionally by status.
func (e *EventsAPI) MyRegistrations(ctx context.Context, status string) ([]domain.EventRegistration, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	var out []domain.EventRegistration
	if err := e.client.Get(ctx, "/events/my-registrations", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
