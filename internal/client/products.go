package client

import (
	"github.com/lucidnz/shopify-resource/internal/http"
	"github.com/lucidnz/shopify-resource/pkg/shopify"
)

// ProductsRepository accesses the products collection.
type ProductsRepository struct {
	*repository
}

// NewProductsRepository creates a new products repository.
func NewProductsRepository(httpClient *http.Client, logger shopify.Logger) *ProductsRepository {
	return &ProductsRepository{
		repository: newRepository(httpClient, logger,
			Resource{Name: "products", Singular: "product"},
			nil,
		),
	}
}
