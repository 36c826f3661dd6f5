package commands

import (
	"github.com/spf13/cobra"

	"github.com/lucidnz/shopify-resource/pkg/shopify"
)

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	return newResourceCommandGroup(resourceSpec{
		use:      "products",
		aliases:  []string{"product"},
		singular: "product",
		short:    "Manage products",
		columns:  []string{"id", "title", "vendor", "product_type", "status", "created_at"},
		selector: func(client shopify.Client) shopify.Repository { return client.Products() },
	})
}
