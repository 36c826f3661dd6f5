package commands

import (
	"github.com/spf13/cobra"

	"github.com/lucidnz/shopify-resource/pkg/shopify"
)

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand() *cobra.Command {
	return newResourceCommandGroup(resourceSpec{
		use:      "orders",
		aliases:  []string{"order"},
		singular: "order",
		short:    "Manage orders",
		columns:  []string{"id", "name", "email", "financial_status", "total_price", "created_at"},
		selector: func(client shopify.Client) shopify.Repository { return client.Orders() },
	})
}
