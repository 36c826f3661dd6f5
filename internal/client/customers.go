package client

import (
	"github.com/lucidnz/shopify-resource/internal/http"
	"github.com/lucidnz/shopify-resource/pkg/shopify"
)

// CustomersRepository accesses the customers collection.
type CustomersRepository struct {
	*repository
}

// NewCustomersRepository creates a new customers repository.
func NewCustomersRepository(httpClient *http.Client, logger shopify.Logger) *CustomersRepository {
	return &CustomersRepository{
		repository: newRepository(httpClient, logger,
			Resource{Name: "customers", Singular: "customer"},
			nil,
		),
	}
}
