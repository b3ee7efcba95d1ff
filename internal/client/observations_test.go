package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luftdata/go-nilu/pkg/nilu"
)

func TestObservationsClient_Historical(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/obs/historical/2021-05-01/2021-05-02/Danmarks plass", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "NOx;NO2", r.URL.Query().Get("components"))

		value := 42.5
		observations := []nilu.StationObservations{
			{
				ID:        464,
				Station:   "Danmarks plass",
				Component: "NOx",
				Unit:      "µg/m³",
				Timestep:  3600,
				Values: []nilu.Measurement{
					{Value: &value, Index: 1, Color: "6ee86e", QualityControlled: true},
				},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(observations)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	from := time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2021, 5, 2, 0, 0, 0, 0, time.UTC)
	params := nilu.NewQueryParams().WithComponents("NOx", "NO2")

	observations, err := client.Observations().Historical(context.Background(), from, to, "Danmarks plass", params)
	require.NoError(t, err)
	require.Len(t, observations, 1)
	assert.Equal(t, "NOx", observations[0].Component)
	require.Len(t, observations[0].Values, 1)
	require.NotNil(t, observations[0].Values[0].Value)
	assert.InDelta(t, 42.5, *observations[0].Values[0].Value, 0.001)
	assert.True(t, observations[0].Values[0].QualityControlled)
}

func TestObservationsClient_Historical_DefaultStation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/obs/historical/2021-05-01/2021-05-02/all", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	from := time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2021, 5, 2, 0, 0, 0, 0, time.UTC)

	observations, err := client.Observations().Historical(context.Background(), from, to, "", nil)
	require.NoError(t, err)
	assert.Empty(t, observations)
}

func TestObservationsClient_Historical_ShowInvalid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("showinvalid"))

		observations := []nilu.StationObservations{
			{
				Station:   "Danmarks plass",
				Component: "PM10",
				Values: []nilu.Measurement{
					{Value: nil},
				},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(observations)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	from := time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2021, 5, 2, 0, 0, 0, 0, time.UTC)
	params := nilu.NewQueryParams().WithShowInvalid(true)

	observations, err := client.Observations().Historical(context.Background(), from, to, "Danmarks plass", params)
	require.NoError(t, err)
	require.Len(t, observations, 1)
	require.Len(t, observations[0].Values, 1)
	assert.Nil(t, observations[0].Values[0].Value)
}

func TestObservationsClient_Historical_FromAfterTo(t *testing.T) {
	client := NewTestClient("http://localhost:1")

	from := time.Date(2021, 5, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := client.Observations().Historical(context.Background(), from, to, "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, nilu.ErrFromTimeAfterToTime)
}

func TestObservationsClient_Historical_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	from := time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2021, 5, 2, 0, 0, 0, 0, time.UTC)

	_, err := client.Observations().Historical(context.Background(), from, to, "nope", nil)
	require.Error(t, err)
	assert.True(t, nilu.IsNotFound(err))
}

func TestObservationsClient_Latest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/aq/utd", r.URL.Path)
		assert.Equal(t, "bergen", r.URL.Query().Get("area"))
		assert.Equal(t, "NO2", r.URL.Query().Get("component"))

		observations := []nilu.LatestObservation{
			{
				Station:   "Danmarks plass",
				Component: "NO2",
				Value:     23.1,
				Unit:      "µg/m³",
				Index:     1,
				IsValid:   true,
			},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(observations)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	params := nilu.NewQueryParams().WithArea("bergen").WithComponent("NO2")

	observations, err := client.Observations().Latest(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, observations, 1)
	assert.Equal(t, "Danmarks plass", observations[0].Station)
	assert.InDelta(t, 23.1, observations[0].Value, 0.001)
	assert.True(t, observations[0].IsValid)
}

func TestObservationsClient_Latest_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	_, err := client.Observations().Latest(context.Background(), nil)
	require.Error(t, err)

	decodeErr := &nilu.DecodeError{}
	assert.ErrorAs(t, err, &decodeErr)
}
