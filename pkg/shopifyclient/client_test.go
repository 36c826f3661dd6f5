package shopifyclient_test

import (
	"testing"

	"github.com/lucidnz/shopify-resource/pkg/shopify"
	"github.com/lucidnz/shopify-resource/pkg/shopifyclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := shopifyclient.New(nil)
		require.ErrorIs(t, err, shopify.ErrConfigRequired)
	})

	t.Run("defaults applied", func(t *testing.T) {
		t.Parallel()

		client, err := shopifyclient.New(&shopify.Config{})
		require.NoError(t, err)
		assert.NotNil(t, client.Orders())
		assert.NotNil(t, client.Customers())
		assert.NotNil(t, client.Products())
		assert.NotNil(t, client.Webhooks())
	})
}
