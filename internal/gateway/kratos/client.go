// Package kratos is the identity-provider gateway: the fallback
// authentication backend behind the primary REST API. It drives Ory Kratos
// native self-service flows and maps Kratos identities into the client's
// User shape.
package kratos

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	kratosclient "github.com/ory/kratos-client-go"
)

// NewAPIClient builds a configured Kratos frontend client.
func NewAPIClient(publicURL string, timeout time.Duration) (*kratosclient.APIClient, error) {
	if !isValidURL(publicURL) {
		return nil, fmt.Errorf("invalid Kratos public URL: %s", publicURL)
	}

	configuration := kratosclient.NewConfiguration()
	configuration.Servers = []kratosclient.ServerConfiguration{
		{URL: publicURL},
	}
	configuration.HTTPClient = &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 20,
			IdleConnTimeout:     90 * time.Second,
		},
	}
	if configuration.DefaultHeader == nil {
		configuration.DefaultHeader = make(map[string]string)
	}
	configuration.DefaultHeader["Accept"] = "application/json"

	return kratosclient.NewAPIClient(configuration), nil
}

// NewProvider wires a Provider around a fresh API client.
func NewProvider(publicURL string, timeout time.Duration, logger *slog.Logger) (*Provider, error) {
	client, err := NewAPIClient(publicURL, timeout)
	if err != nil {
		return nil, err
	}
	logger.Debug("kratos client initialized", "public_url", publicURL)
	return &Provider{
		client:    client,
		publicURL: publicURL,
		logger:    logger.With("component", "kratos_provider"),
	}, nil
}

// isValidURL validates if a URL is properly formatted
func isValidURL(urlStr string) bool {
	if urlStr == "" {
		return false
	}
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	return parsedURL.Scheme != "" && parsedURL.Host != ""
}
