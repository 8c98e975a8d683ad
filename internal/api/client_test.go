package api

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
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func testClient(t *testing.T, token string, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(srv.URL, 5*time.Second, staticToken(token), logger)
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	c := testClient(t, "tok-123", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))

	var out map[string]any
	require.NoError(t, c.Get(context.Background(), "/profile", nil, &out))
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientAnonymousWithoutToken(t *testing.T) {
	var gotAuth string
	c := testClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))

	var out map[string]any
	require.NoError(t, c.Get(context.Background(), "/events", nil, &out))
	assert.Empty(t, gotAuth)
}

func TestClientRequestIDOnWrites(t *testing.T) {
	var getID, postID string
	c := testClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			getID = r.Header.Get("X-Request-Id")
		} else {
			postID = r.Header.Get("X-Request-Id")
		}
		_, _ = w.Write([]byte(`{}`))
	}))

	require.NoError(t, c.Get(context.Background(), "/a", nil, nil))
	require.NoError(t, c.Post(context.Background(), "/a", map[string]string{"k": "v"}, nil))
	assert.Empty(t, getID)
	assert.NotEmpty(t, postID)
}

func TestClientAPIError(t *testing.T) {
	c := testClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Event not found"}`, http.StatusNotFound)
	}))

	err := c.Get(context.Background(), "/events/nope", nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Event not found", apiErr.Message)
	assert.Equal(t, "Event not found", apiErr.Error())
}

func TestClientAPIErrorPrefersErrorField(t *testing.T) {
	c := testClient(t, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"validation failed","message":"Bad Request"}`, http.StatusBadRequest)
	}))

	err := c.Post(context.Background(), "/events", map[string]string{}, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "validation failed", apiErr.Message)
}

func TestDecode(t *testing.T) {
	type item struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}

	t.Run("enveloped payload", func(t *testing.T) {
		var got item
		require.NoError(t, Decode([]byte(`{"data":{"id":"1","title":"hi"}}`), &got))
		assert.Equal(t, "hi", got.Title)
	})

	t.Run("bare payload", func(t *testing.T) {
		var got item
		require.NoError(t, Decode([]byte(`{"id":"1","title":"hi"}`), &got))
		assert.Equal(t, "hi", got.Title)
	})

	t.Run("enveloped list", func(t *testing.T) {
		var got []item
		require.NoError(t, Decode([]byte(`{"data":[{"id":"1"},{"id":"2"}]}`), &got))
		assert.Len(t, got, 2)
	})

	t.Run("bare list", func(t *testing.T) {
		var got []item
		require.NoError(t, Decode([]byte(`[{"id":"1"}]`), &got))
		assert.Len(t, got, 1)
	})

	t.Run("null data falls back to bare body", func(t *testing.T) {
		var got map[string]any
		require.NoError(t, Decode([]byte(`{"data":null,"message":"ok"}`), &got))
		assert.Equal(t, "ok", got["message"])
	})

	t.Run("malformed body errors", func(t *testing.T) {
		var got item
		assert.Error(t, Decode([]byte(`not json`), &got))
	})
}

func TestListParamsValues(t *testing.T) {
	p := ListParams{Page: 2, Limit: 10, Search: "bike", Status: "ACTIVE"}
	q := p.Values()
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "10", q.Get("limit"))
	assert.Equal(t, "bike", q.Get("search"))
	assert.Equal(t, "ACTIVE", q.Get("status"))
	assert.Empty(t, q.Get("category"), "zero values stay out of the query")
}
