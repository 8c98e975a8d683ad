package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

// SearchAPI wraps the /search endpoints.
type SearchAPI struct {
	client *Client
}

// NewSearchAPI creates the search resource group.
func NewSearchAPI(client *Client) *SearchAPI {
	return &SearchAPI{client: client}
}

// Search queries across resource types. An empty resourceType means "all".
func (s *SearchAPI) Search(ctx context.Context, query, resourceType string, limit int) ([]domain.SearchResult, error) {
	q := url.Values{}
	q.Set("q", query)
	if resourceType != "" {
		q.Set("type", resourceType)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []domain.SearchResult
	if err := s.client.Get(ctx, "/search", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// NotificationsAPI wraps the /notifications endpoints.
type NotificationsAPI struct {
	client *Client
}

// NewNotificationsAPI creates the notifications resource group.
func NewNotificationsAPI(client *Client) *NotificationsAPI {
	return &NotificationsAPI{client: client}
}

// List returns the caller's notifications.
func (n *NotificationsAPI) List(ctx context.Context, unreadOnly bool) ([]domain.Notification, error) {
	q := url.Values{}
	if unreadOnly {
		q.Set("unreadOnly", "true")
	}
	var out []domain.Notification
	if err := n.client.Get(ctx, "/notifications", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkRead marks one notification as read.
func (n *NotificationsAPI) MarkRead(ctx context.Context, id string) error {
	return n.client.Put(ctx, "/notifications/"+id+"/read", nil, nil)
}

// MarkAllRead marks every notification as read.
func (n *NotificationsAPI) MarkAllRead(ctx context.Context) error {
	return n.client.Put(ctx, "/notifications/read-all", nil, nil)
}

// UnreadCount returns the number of unread notifications.
func (n *NotificationsAPI) UnreadCount(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := n.client.Get(ctx, "/notifications/unread-count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// MessagesAPI wraps the /messages endpoints.
type MessagesAPI struct {
	client *Client
}

// NewMessagesAPI creates the messages resource group.
func NewMessagesAPI(client *Client) *MessagesAPI {
	return &MessagesAPI{client: client}
}

// Conversations lists the caller's conversations.
func (m *MessagesAPI) Conversations(ctx context.Context, params ListParams) ([]domain.Conversation, error) {
	var out []domain.Conversation
	if err := m.client.Get(ctx, "/messages/conversations", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Conversation returns the messages in one conversation.
func (m *MessagesAPI) Conversation(ctx context.Context, id string, params ListParams) ([]domain.Message, error) {
	var out []domain.Message
	if err := m.client.Get(ctx, "/messages/conversations/"+id, params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Send delivers a message to a recipient.
func (m *MessagesAPI) Send(ctx context.Context, recipientID, content string) (*domain.Message, error) {
	body := map[string]string{"recipientId": recipientID, "content": content}
	var out domain.Message
	if err := m.client.Post(ctx, "/messages", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReportsAPI wraps the /reports endpoints.
type ReportsAPI struct {
	client *Client
}

// NewReportsAPI creates the reports resource group.
func NewReportsAPI(client *Client) *ReportsAPI {
	return &ReportsAPI{client: client}
}

// Create files a moderation report against a target.
func (r *ReportsAPI) Create(ctx context.Context, targetType, targetID, reason, description string) error {
	body := map[string]string{
		"type":     targetType,
		"targetId": targetID,
		"reason":   reason,
	}
	if description != "" {
		body["description"] = description
	}
	return r.client.Post(ctx, "/reports", body, nil)
}

// AnalyticsAPI wraps the /analytics endpoints.
type AnalyticsAPI struct {
	client *Client
}

// NewAnalyticsAPI creates the analytics resource group.
func NewAnalyticsAPI(client *Client) *AnalyticsAPI {
	return &AnalyticsAPI{client: client}
}

// PlatformStats are platform-wide counters shown on the dashboard.
type PlatformStats struct {
	Users    int `json:"users"`
	Events   int `json:"events"`
	Posts    int `json:"posts"`
	Listings int `json:"listings"`
}

// Stats returns platform-wide counters.
func (a *AnalyticsAPI) Stats(ctx context.Context) (*PlatformStats, error) {
	var out PlatformStats
	if err := a.client.Get(ctx, "/analytics/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
