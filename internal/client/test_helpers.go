package client

import (
	"github.com/lucidnz/shopify-resource/internal/http"
	"github.com/lucidnz/shopify-resource/pkg/shopify"
)

// NewTestClient creates a client whose requests go to the given base URL
// instead of a per-shop Admin API URL.
func NewTestClient(baseURL string) *Client {
	client := &Client{
		httpClient: http.NewClient("", http.WithBaseURL(baseURL)),
	}

	client.initializeRepositories()

	return client
}

// testCredentials returns credentials accepted by the transport for tests.
func testCredentials() *shopify.Credentials {
	return &shopify.Credentials{
		ShopDomain:  "example",
		AccessToken: "shpat_test",
	}
}
