// Package constants holds shared defaults for the NILU client.
package constants

import "time"

// API defaults.
const (
	// DefaultBaseURL is the public NILU API root.
	DefaultBaseURL = "https://api.nilu.no"

	// DefaultUserAgent identifies the client on the wire.
	DefaultUserAgent = "go-nilu/1.0"

	// AllStations is the path segment matching every station in historical
	// observation requests.
	AllStations = "all"

	// DateLayout is the layout for the from/to path segments of historical
	// observation requests.
	DateLayout = "2006-01-02"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits, used only when a caller opts into retries.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)
