package nilu

import (
	"context"
	"time"
)

// Config holds the client configuration. It is read-only after construction;
// a Client built from it holds no mutable shared state and is safe for
// concurrent use.
type Config struct {
	// BaseURL is the API root. Defaults to https://api.nilu.no. Override it
	// to point at a mock server in tests.
	BaseURL string

	// UserAgent is sent with every request.
	UserAgent string

	// HTTPTimeout is the per-request timeout passed to the transport.
	HTTPTimeout time.Duration

	// Debug enables request/response logging through Logger.
	Debug bool

	// Logger receives transport logs. Optional.
	Logger Logger

	// RetryMax is the maximum number of transport retries. The default of 0
	// means requests are never retried; every failure propagates to the
	// caller.
	RetryMax int

	// RetryWaitMin is the minimum wait between retries when RetryMax > 0.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum wait between retries when RetryMax > 0.
	RetryWaitMax time.Duration
}

// Logger is the logging interface used by the client.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// LookupClient provides access to the lookup/* metadata endpoints.
type LookupClient interface {
	// Areas returns all available areas.
	Areas(ctx context.Context) ([]Area, error)

	// Stations returns station metadata, optionally filtered by area and utd.
	Stations(ctx context.Context, params *QueryParams) ([]Station, error)

	// Components returns all available components.
	Components(ctx context.Context) ([]Component, error)

	// AirQualityIndices returns the air quality index scale per component,
	// optionally filtered by component and culture.
	AirQualityIndices(ctx context.Context, params *QueryParams) ([]AirQualityIndex, error)

	// Timeseries returns all available time series, optionally filtered by
	// station, component and timestep.
	Timeseries(ctx context.Context, params *QueryParams) ([]Timeseries, error)
}

// ObservationsClient provides access to the observation endpoints.
type ObservationsClient interface {
	// Historical returns all observations within [from, to] for the given
	// station. An empty station means all stations. Supported params:
	// components and showinvalid.
	Historical(ctx context.Context, from, to time.Time, station string, params *QueryParams) ([]StationObservations, error)

	// Latest returns up-to-date measurements, optionally filtered by area,
	// station and component.
	Latest(ctx context.Context, params *QueryParams) ([]LatestObservation, error)
}

// Client is the top-level NILU API client.
type Client interface {
	Lookup() LookupClient
	Observations() ObservationsClient
}
