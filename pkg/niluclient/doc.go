// Package niluclient provides the main entry point for creating NILU API
// clients.
//
// The zero config is usable and points at the public API:
//
//	cli, err := niluclient.New(&nilu.Config{})
//
// Point BaseURL at a mock server for testing:
//
//	cli, err := niluclient.New(&nilu.Config{BaseURL: server.URL})
package niluclient
