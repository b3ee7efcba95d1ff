// Package nilu provides types, interfaces, and helpers for working with the
// public NILU air-quality API (https://api.nilu.no).
//
// # Overview
//
// The nilu package defines the domain types (e.g., Area, Station, Component,
// Timeseries, StationObservations) and the interfaces for the resource-oriented
// clients (LookupClient, ObservationsClient). A concrete implementation is
// provided by the niluclient package, which wires configuration and transport.
// Most consumers should import niluclient to construct a client and then
// interact with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/luftdata/go-nilu/pkg/nilu"
//	  "github.com/luftdata/go-nilu/pkg/niluclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := niluclient.New(&nilu.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  components, err := cli.Lookup().Components(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = components
//	}
//
// # Queries
//
// Use QueryParams to express the optional filters the API accepts (area,
// station, component, culture, timestep, utd, showinvalid):
//
//	stations, err := cli.Lookup().Stations(ctx, nilu.NewQueryParams().WithArea("bergen"))
//
// # Errors
//
// Failures are represented by three error types: ConnectivityError for
// transport-level failures, APIError for non-2xx HTTP responses, and
// DecodeError for bodies that are not valid JSON. Helpers such as IsNotFound
// and IsServerError make it easy to branch on common cases. The client never
// retries or recovers internally; all three propagate to the caller.
package nilu
