package client

import (
	"github.com/lucidnz/shopify-resource/internal/http"
	"github.com/lucidnz/shopify-resource/pkg/shopify"
)

// OrdersRepository accesses the orders collection.
//
// The Admin API only returns open orders unless told otherwise, which makes
// iteration silently incomplete; the repository defaults status to "any" so
// closed and cancelled orders are included. Call-site params still win.
type OrdersRepository struct {
	*repository
}

// NewOrdersRepository creates a new orders repository.
func NewOrdersRepository(httpClient *http.Client, logger shopify.Logger) *OrdersRepository {
	return &OrdersRepository{
		repository: newRepository(httpClient, logger,
			Resource{Name: "orders", Singular: "order"},
			shopify.Params{"status": "any"},
		),
	}
}
