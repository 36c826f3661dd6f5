// Package shopifyclient provides the main entry point for creating Shopify
// Admin API clients.
package shopifyclient

import (
	"fmt"

	"github.com/lucidnz/shopify-resource/internal/client"
	"github.com/lucidnz/shopify-resource/internal/constants"
	"github.com/lucidnz/shopify-resource/pkg/shopify"
)

// New creates a new Admin API client.
func New(config *shopify.Config) (shopify.Client, error) {
	if config == nil {
		return nil, shopify.ErrConfigRequired
	}

	if config.APIVersion == "" {
		config.APIVersion = constants.DefaultAPIVersion
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}
