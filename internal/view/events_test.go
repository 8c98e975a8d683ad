package view

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sowjanyakambhampati/forumctl/internal/api"
	"github.com/Sowjanyakambhampati/forumctl/internal/auth"
	"github.com/Sowjanyakambhampati/forumctl/internal/domain"
)

type nilStore struct{}

func (nilStore) Token() string                       { return "" }
func (nilStore) Current() *domain.User               { return nil }
func (nilStore) Session() (*domain.Session, error)   { return nil, nil }
func (nilStore) Set(*domain.Session) error           { return nil }
func (nilStore) Clear() error                        { return nil }
func (nilStore) Subscribe(func(*domain.User)) func() { return func() {} }

func newTestView(t *testing.T, handler http.Handler) *View {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := api.NewClient(srv.URL, 5*time.Second, nilStore{}, logger)
	mgr := auth.NewManager(nilStore{}, logger)
	return New(client, mgr, logger)
}

func TestEventDetailToleratesSectionFailures(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /events/42", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"42","title":"Street Cleanup","location":"Main St","status":"UPCOMING"}}`))
	})
	mux.HandleFunc("GET /events/42/comments", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"c1","content":"count me in"}]}`))
	})
	mux.HandleFunc("GET /events/42/attendees", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	})

	v := newTestView(t, mux)

	page, err := v.EventDetail(context.Background(), "42")
	require.NoError(t, err, "a failing section must not fail the page")
	assert.Equal(t, "Street Cleanup", page.Event.Title)
	assert.Empty(t, page.Attendees, "failed section loads empty")
	require.Len(t, page.Comments, 1)
	assert.Equal(t, "count me in", page.Comments[0].Content)
}

func TestEventDetailPrimaryFetchFatal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /events/42", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Event not found"}`, http.StatusNotFound)
	})

	v := newTestView(t, mux)

	_, err := v.EventDetail(context.Background(), "42")
	require.Error(t, err)

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestEventListKeepsCategorySidebarOptional(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /events", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"1","title":"Yard Sale","location":"5th Ave","status":"UPCOMING"}]}`))
	})
	mux.HandleFunc("GET /events/categories", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusBadGateway)
	})

	v := newTestView(t, mux)

	page, err := v.EventList(context.Background(), api.ListParams{})
	require.NoError(t, err)
	require.Len(t, page.Events, 1)
	assert.Empty(t, page.Categories)
}

func TestHomeNeverFails(t *testing.T) {
	// Backend entirely down: every section logs and loads empty.
	v := newTestView(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"maintenance"}`, http.StatusServiceUnavailable)
	}))

	page := v.Home(context.Background(), 5)
	require.NotNil(t, page)
	assert.Nil(t, page.User)
	assert.Empty(t, page.UpcomingEvents)
	assert.Empty(t, page.RecentPosts)
	assert.Nil(t, page.Stats)
}
