package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lucidnz/shopify-resource/pkg/shopify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCredentials() *shopify.Credentials {
	return &shopify.Credentials{
		ShopDomain:  "example",
		AccessToken: "shpat_test",
	}
}

func TestClient_Get(t *testing.T) {
	t.Parallel()

	var gotRequest *http.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequest = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"orders": []}`))
	}))
	defer server.Close()

	client := NewClient("", WithBaseURL(server.URL))

	query := url.Values{"limit": []string{"50"}, "status": []string{"any"}}
	resp, err := client.Get(context.Background(), testCredentials(), "orders", query)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []byte(`{"orders": []}`), resp.Body)

	require.NotNil(t, gotRequest)
	assert.Equal(t, "/orders.json", gotRequest.URL.Path)
	assert.Equal(t, "any", gotRequest.URL.Query().Get("status"))
	assert.Equal(t, "50", gotRequest.URL.Query().Get("limit"))
	assert.Equal(t, "shpat_test", gotRequest.Header.Get("X-Shopify-Access-Token"))
	assert.Equal(t, "application/json", gotRequest.Header.Get("Accept"))
}

func TestClient_GetAPIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors": "Not Found"}`))
	}))
	defer server.Close()

	client := NewClient("", WithBaseURL(server.URL))

	_, err := client.Get(context.Background(), testCredentials(), "orders/999", nil)
	require.Error(t, err)

	var apiErr *shopify.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Not Found", apiErr.Message)
	assert.True(t, shopify.IsNotFound(err))
}

func TestClient_Delete(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient("", WithBaseURL(server.URL))

	resp, err := client.Delete(context.Background(), testCredentials(), "orders/42")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/orders/42.json", gotPath)
}

func TestClient_RetriesOnThrottle(t *testing.T) {
	t.Parallel()

	var hits int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"errors": "throttled"}`))

			return
		}

		_, _ = w.Write([]byte(`{"orders": []}`))
	}))
	defer server.Close()

	client := NewClient("",
		WithBaseURL(server.URL),
		WithRetryConfig(2, time.Millisecond, 5*time.Millisecond),
	)

	resp, err := client.Get(context.Background(), testCredentials(), "orders", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestClient_NoRetryOnClientError(t *testing.T) {
	t.Parallel()

	var hits int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors": {"status": ["is invalid"]}}`))
	}))
	defer server.Close()

	client := NewClient("",
		WithBaseURL(server.URL),
		WithRetryConfig(3, time.Millisecond, 5*time.Millisecond),
	)

	_, err := client.Get(context.Background(), testCredentials(), "orders", nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestClient_CredentialValidation(t *testing.T) {
	t.Parallel()

	client := NewClient("")

	tests := []struct {
		name        string
		creds       *shopify.Credentials
		expectedErr error
	}{
		{
			name:        "nil credentials",
			creds:       nil,
			expectedErr: shopify.ErrCredentialsRequired,
		},
		{
			name:        "missing shop domain",
			creds:       &shopify.Credentials{AccessToken: "shpat_test"},
			expectedErr: shopify.ErrShopDomainRequired,
		},
		{
			name:        "missing access token",
			creds:       &shopify.Credentials{ShopDomain: "example"},
			expectedErr: shopify.ErrAccessTokenRequired,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := client.Get(context.Background(), tt.creds, "orders", nil)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestClient_BuildURL(t *testing.T) {
	t.Parallel()

	client := NewClient("2024-01")

	requestURL, err := client.buildURL(testCredentials(), "orders/count", url.Values{"status": []string{"any"}})
	require.NoError(t, err)
	assert.Equal(t, "https://example.myshopify.com/admin/api/2024-01/orders/count.json?status=any", requestURL)
}

func TestClient_CachesRepeatedGets(t *testing.T) {
	t.Parallel()

	var hits int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`{"count": 7}`))
	}))
	defer server.Close()

	client := NewClient("",
		WithBaseURL(server.URL),
		WithCache(shopify.NewMemoryCache(10, time.Minute)),
	)

	for i := 0; i < 2; i++ {
		resp, err := client.Get(context.Background(), testCredentials(), "orders/count", nil)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"count": 7}`), resp.Body)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestClient_NeverCachesCursorPages(t *testing.T) {
	t.Parallel()

	var hits int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`{"orders": []}`))
	}))
	defer server.Close()

	client := NewClient("",
		WithBaseURL(server.URL),
		WithCache(shopify.NewMemoryCache(10, time.Minute)),
	)

	query := url.Values{"since_id": []string{"1"}}
	for i := 0; i < 2; i++ {
		_, err := client.Get(context.Background(), testCredentials(), "orders", query)
		require.NoError(t, err)
	}

	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}
