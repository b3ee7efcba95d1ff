package niluclient

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/luftdata/go-nilu/internal/client"
	"github.com/luftdata/go-nilu/internal/constants"
	"github.com/luftdata/go-nilu/pkg/nilu"
)

// New creates a new NILU API client. A nil or zero config targets the public
// API at https://api.nilu.no.
func New(config *nilu.Config) (nilu.Client, error) {
	if config == nil {
		config = &nilu.Config{}
	}

	baseURL, err := normalizeBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	// Copy so the caller's config stays untouched.
	cfg := *config
	cfg.BaseURL = baseURL

	niluClient, err := client.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return niluClient, nil
}

// normalizeBaseURL applies the default endpoint, forces a scheme, and strips
// trailing slashes.
func normalizeBaseURL(baseURL string) (string, error) {
	if baseURL == "" {
		return constants.DefaultBaseURL, nil
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("%w: %s", nilu.ErrNoHostInURL, baseURL)
	}

	return baseURL, nil
}
