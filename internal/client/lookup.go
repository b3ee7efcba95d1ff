package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/luftdata/go-nilu/internal/http"
	"github.com/luftdata/go-nilu/pkg/nilu"
)

// LookupClient implements nilu.LookupClient against the lookup/* endpoints.
type LookupClient struct {
	httpClient *http.Client
}

// NewLookupClient creates a new lookup client.
func NewLookupClient(httpClient *http.Client) *LookupClient {
	return &LookupClient{
		httpClient: httpClient,
	}
}

// Areas implements nilu.LookupClient.Areas.
func (c *LookupClient) Areas(ctx context.Context) ([]nilu.Area, error) {
	resp, err := c.httpClient.Get(ctx, "/lookup/areas", nil)
	if err != nil {
		return nil, fmt.Errorf("getting areas: %w", err)
	}

	var areas []nilu.Area

	err = decode(resp, &areas)
	if err != nil {
		return nil, fmt.Errorf("parsing areas: %w", err)
	}

	return areas, nil
}

// Stations implements nilu.LookupClient.Stations.
func (c *LookupClient) Stations(ctx context.Context, params *nilu.QueryParams) ([]nilu.Station, error) {
	resp, err := c.httpClient.Get(ctx, "/lookup/stations", toValues(params))
	if err != nil {
		return nil, fmt.Errorf("getting stations: %w", err)
	}

	var stations []nilu.Station

	err = decode(resp, &stations)
	if err != nil {
		return nil, fmt.Errorf("parsing stations: %w", err)
	}

	return stations, nil
}

// Components implements nilu.LookupClient.Components.
func (c *LookupClient) Components(ctx context.Context) ([]nilu.Component, error) {
	resp, err := c.httpClient.Get(ctx, "/lookup/components", nil)
	if err != nil {
		return nil, fmt.Errorf("getting components: %w", err)
	}

	var components []nilu.Component

	err = decode(resp, &components)
	if err != nil {
		return nil, fmt.Errorf("parsing components: %w", err)
	}

	return components, nil
}

// AirQualityIndices implements nilu.LookupClient.AirQualityIndices.
func (c *LookupClient) AirQualityIndices(ctx context.Context, params *nilu.QueryParams) ([]nilu.AirQualityIndex, error) {
	resp, err := c.httpClient.Get(ctx, "/lookup/aqis", toValues(params))
	if err != nil {
		return nil, fmt.Errorf("getting air quality indices: %w", err)
	}

	var indices []nilu.AirQualityIndex

	err = decode(resp, &indices)
	if err != nil {
		return nil, fmt.Errorf("parsing air quality indices: %w", err)
	}

	return indices, nil
}

// Timeseries implements nilu.LookupClient.Timeseries.
func (c *LookupClient) Timeseries(ctx context.Context, params *nilu.QueryParams) ([]nilu.Timeseries, error) {
	resp, err := c.httpClient.Get(ctx, "/lookup/timeseries", toValues(params))
	if err != nil {
		return nil, fmt.Errorf("getting timeseries: %w", err)
	}

	var series []nilu.Timeseries

	err = decode(resp, &series)
	if err != nil {
		return nil, fmt.Errorf("parsing timeseries: %w", err)
	}

	return series, nil
}

func toValues(params *nilu.QueryParams) url.Values {
	if params == nil {
		return nil
	}

	return params.ToValues()
}

// decode unmarshals a response body, mapping failures to *nilu.DecodeError.
func decode(resp *http.Response, out interface{}) error {
	err := json.Unmarshal(resp.Body, out)
	if err != nil {
		return &nilu.DecodeError{Err: err}
	}

	return nil
}
