package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	niluhttp "github.com/luftdata/go-nilu/internal/http"
	"github.com/luftdata/go-nilu/pkg/nilu"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/lookup/components", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.NotEmpty(t, request.Header.Get("User-Agent"))

			response := []map[string]string{{"component": "NO2"}}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := niluhttp.NewClient(server.URL)

		req := &niluhttp.Request{
			Method: "GET",
			Path:   "/lookup/components",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result []map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "NO2", result[0]["component"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/lookup/stations", request.URL.Path)
			assert.Equal(t, "bergen", request.URL.Query().Get("area"))
			assert.Equal(t, "true", request.URL.Query().Get("utd"))
			writer.WriteHeader(http.StatusOK)
			_, _ = writer.Write([]byte("[]"))
		}))
		defer server.Close()

		client := niluhttp.NewClient(server.URL)

		req := &niluhttp.Request{
			Method: "GET",
			Path:   "/lookup/stations",
			Query:  url.Values{"area": []string{"bergen"}, "utd": []string{"true"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("non-2xx response becomes APIError", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`"Internal error"`))
		}))
		defer server.Close()

		client := niluhttp.NewClient(server.URL)

		resp, err := client.Get(context.Background(), "/lookup/components", nil)
		require.Error(t, err)
		assert.Nil(t, resp)

		apiErr := &nilu.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "Internal error")
		assert.True(t, nilu.IsServerError(err))
	})

	t.Run("404 response becomes APIError with status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := niluhttp.NewClient(server.URL)

		_, err := client.Get(context.Background(), "/lookup/nope", nil)
		require.Error(t, err)

		apiErr := &nilu.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.True(t, nilu.IsNotFound(err))
	})

	t.Run("unreachable server becomes ConnectivityError", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		server.Close()

		client := niluhttp.NewClient(server.URL)

		_, err := client.Get(context.Background(), "/lookup/areas", nil)
		require.Error(t, err)

		connErr := &nilu.ConnectivityError{}
		require.ErrorAs(t, err, &connErr)
		assert.True(t, nilu.IsConnectivityError(err))
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "test-agent/1.0", request.Header.Get("User-Agent"))
			_, _ = writer.Write([]byte("[]"))
		}))
		defer server.Close()

		client := niluhttp.NewClient(server.URL, niluhttp.WithUserAgent("test-agent/1.0"))

		_, err := client.Get(context.Background(), "/lookup/areas", nil)
		require.NoError(t, err)
	})

	t.Run("debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte("[]"))
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := niluhttp.NewClient(server.URL, niluhttp.WithLogger(logger), niluhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/lookup/areas", nil)
		require.NoError(t, err)
		assert.NotEmpty(t, logger.logs)
	})

	t.Run("interceptors run around the request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom"))
			_, _ = writer.Write([]byte("[]"))
		}))
		defer server.Close()

		var observedStatus int

		chain := nilu.NewInterceptorChain()
		chain.AddRequestInterceptor(nilu.HeaderInterceptor("X-Custom", "custom-value"))
		chain.AddResponseInterceptor(func(ctx context.Context, req *nilu.Request, resp *nilu.Response) error {
			observedStatus = resp.StatusCode

			return nil
		})

		client := niluhttp.NewClient(server.URL, niluhttp.WithInterceptors(chain))

		_, err := client.Get(context.Background(), "/lookup/areas", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, observedStatus)
	})

	t.Run("context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte("[]"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := niluhttp.NewClient(server.URL)

		_, err := client.Get(ctx, "/lookup/areas", nil)
		require.Error(t, err)
	})
}
