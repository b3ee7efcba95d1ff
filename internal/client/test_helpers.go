package client

import (
	internalhttp "github.com/luftdata/go-nilu/internal/http"
)

// NewTestClient creates a new test client against the given base URL,
// typically an httptest server.
func NewTestClient(baseURL string) *Client {
	client := &Client{
		httpClient: internalhttp.NewClient(baseURL),
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}
