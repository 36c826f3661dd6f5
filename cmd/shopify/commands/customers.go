package commands

import (
	"github.com/spf13/cobra"

	"github.com/lucidnz/shopify-resource/pkg/shopify"
)

// NewCustomersCommand creates the customers command group.
func NewCustomersCommand() *cobra.Command {
	return newResourceCommandGroup(resourceSpec{
		use:      "customers",
		aliases:  []string{"customer"},
		singular: "customer",
		short:    "Manage customers",
		columns:  []string{"id", "email", "first_name", "last_name", "orders_count", "created_at"},
		selector: func(client shopify.Client) shopify.Repository { return client.Customers() },
	})
}
