package client

import (
	"github.com/lucidnz/shopify-resource/internal/http"
	"github.com/lucidnz/shopify-resource/pkg/shopify"
)

// WebhooksRepository accesses the webhooks collection.
type WebhooksRepository struct {
	*repository
}

// NewWebhooksRepository creates a new webhooks repository.
func NewWebhooksRepository(httpClient *http.Client, logger shopify.Logger) *WebhooksRepository {
	return &WebhooksRepository{
		repository: newRepository(httpClient, logger,
			Resource{Name: "webhooks", Singular: "webhook"},
			nil,
		),
	}
}
