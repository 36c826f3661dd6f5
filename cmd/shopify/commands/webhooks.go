package commands

import (
	"github.com/spf13/cobra"

	"github.com/lucidnz/shopify-resource/pkg/shopify"
)

// NewWebhooksCommand creates the webhooks command group.
func NewWebhooksCommand() *cobra.Command {
	return newResourceCommandGroup(resourceSpec{
		use:      "webhooks",
		aliases:  []string{"webhook"},
		singular: "webhook",
		short:    "Manage webhook subscriptions",
		columns:  []string{"id", "topic", "address", "format", "created_at"},
		selector: func(client shopify.Client) shopify.Repository { return client.Webhooks() },
	})
}
