package client

import (
	"fmt"

	"github.com/lucidnz/shopify-resource/internal/constants"
	"github.com/lucidnz/shopify-resource/internal/http"
	"github.com/lucidnz/shopify-resource/pkg/shopify"
)

// Client implements the shopify.Client interface.
type Client struct {
	httpClient *http.Client
	logger     shopify.Logger

	// Resource repositories
	orders    shopify.Repository
	customers shopify.Repository
	products  shopify.Repository
	webhooks  shopify.Repository
}

// New creates a new Admin API client from config.
func New(config *shopify.Config) (*Client, error) {
	if config == nil {
		return nil, shopify.ErrConfigRequired
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	client := &Client{
		httpClient: http.NewClient(config.APIVersion, httpOpts...),
		logger:     config.Logger,
	}

	client.initializeRepositories()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *shopify.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		retryWaitMin := config.RetryWaitMin
		retryWaitMax := config.RetryWaitMax

		if retryWaitMin <= 0 {
			retryWaitMin = constants.DefaultRetryWaitMin
		}

		if retryWaitMax <= 0 {
			retryWaitMax = constants.ExtendedRetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.Cache != nil {
		cache, err := shopify.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("creating cache: %w", err)
		}

		httpOpts = append(httpOpts, http.WithCache(cache))
	}

	return httpOpts, nil
}

// Orders implements shopify.Client.Orders.
func (c *Client) Orders() shopify.Repository {
	return c.orders
}

// Customers implements shopify.Client.Customers.
func (c *Client) Customers() shopify.Repository {
	return c.customers
}

// Products implements shopify.Client.Products.
func (c *Client) Products() shopify.Repository {
	return c.products
}

// Webhooks implements shopify.Client.Webhooks.
func (c *Client) Webhooks() shopify.Repository {
	return c.webhooks
}

// initializeRepositories initializes all resource repositories.
func (c *Client) initializeRepositories() {
	c.orders = NewOrdersRepository(c.httpClient, c.logger)
	c.customers = NewCustomersRepository(c.httpClient, c.logger)
	c.products = NewProductsRepository(c.httpClient, c.logger)
	c.webhooks = NewWebhooksRepository(c.httpClient, c.logger)
}
