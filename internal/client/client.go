// Package client implements the nilu.Client interface.
package client

import (
	"github.com/luftdata/go-nilu/internal/constants"
	"github.com/luftdata/go-nilu/internal/http"
	"github.com/luftdata/go-nilu/pkg/nilu"
)

// Client implements the nilu.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     nilu.Logger

	// Resource clients
	lookup       nilu.LookupClient
	observations nilu.ObservationsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *nilu.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new NILU API client.
func New(config *nilu.Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, nilu.ErrBaseURLRequired
	}

	httpOpts := createHTTPClientOptions(config)
	httpClient := http.NewClient(config.BaseURL, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// Lookup implements nilu.Client.Lookup.
func (c *Client) Lookup() nilu.LookupClient {
	return c.lookup
}

// Observations implements nilu.Client.Observations.
func (c *Client) Observations() nilu.ObservationsClient {
	return c.observations
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.lookup = NewLookupClient(c.httpClient)
	c.observations = NewObservationsClient(c.httpClient)
}
