package client

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/luftdata/go-nilu/internal/constants"
	"github.com/luftdata/go-nilu/internal/http"
	"github.com/luftdata/go-nilu/pkg/nilu"
)

// ObservationsClient implements nilu.ObservationsClient against the
// obs/historical and aq/utd endpoints.
type ObservationsClient struct {
	httpClient *http.Client
}

// NewObservationsClient creates a new observations client.
func NewObservationsClient(httpClient *http.Client) *ObservationsClient {
	return &ObservationsClient{
		httpClient: httpClient,
	}
}

// Historical implements nilu.ObservationsClient.Historical.
func (c *ObservationsClient) Historical(ctx context.Context, from, to time.Time, station string, params *nilu.QueryParams) ([]nilu.StationObservations, error) {
	if from.After(to) {
		return nil, nilu.ErrFromTimeAfterToTime
	}

	if station == "" {
		station = constants.AllStations
	}

	path := fmt.Sprintf("/obs/historical/%s/%s/%s",
		from.Format(constants.DateLayout),
		to.Format(constants.DateLayout),
		url.PathEscape(station),
	)

	resp, err := c.httpClient.Get(ctx, path, toValues(params))
	if err != nil {
		return nil, fmt.Errorf("getting historical observations: %w", err)
	}

	var observations []nilu.StationObservations

	err = decode(resp, &observations)
	if err != nil {
		return nil, fmt.Errorf("parsing historical observations: %w", err)
	}

	return observations, nil
}

// Latest implements nilu.ObservationsClient.Latest.
func (c *ObservationsClient) Latest(ctx context.Context, params *nilu.QueryParams) ([]nilu.LatestObservation, error) {
	resp, err := c.httpClient.Get(ctx, "/aq/utd", toValues(params))
	if err != nil {
		return nil, fmt.Errorf("getting latest observations: %w", err)
	}

	var observations []nilu.LatestObservation

	err = decode(resp, &observations)
	if err != nil {
		return nil, fmt.Errorf("parsing latest observations: %w", err)
	}

	return observations, nil
}
