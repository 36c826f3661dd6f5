package commands

import (
	"encoding/json"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucidnz/shopify-resource/pkg/shopify"
)

func TestParseFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filters  []string
		expected shopify.Params
		wantErr  bool
	}{
		{
			name:     "no filters",
			filters:  nil,
			expected: nil,
		},
		{
			name:     "single filter",
			filters:  []string{"status=open"},
			expected: shopify.Params{"status": "open"},
		},
		{
			name:     "value containing equals",
			filters:  []string{"created_at_min=2024-01-01T00:00:00Z"},
			expected: shopify.Params{"created_at_min": "2024-01-01T00:00:00Z"},
		},
		{
			name:    "missing separator",
			filters: []string{"status"},
			wantErr: true,
		},
		{
			name:    "empty key",
			filters: []string{"=open"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params, err := ParseFilters(tt.filters)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidFilter)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestActiveCredentials(t *testing.T) {
	viper.Set("shop", "")
	viper.Set("token", "")

	_, err := ActiveCredentials()
	require.ErrorIs(t, err, ErrShopRequired)

	viper.Set("shop", "example")

	_, err = ActiveCredentials()
	require.ErrorIs(t, err, ErrTokenRequired)

	viper.Set("token", "shpat_test")

	creds, err := ActiveCredentials()
	require.NoError(t, err)
	assert.Equal(t, "example", creds.ShopDomain)
	assert.Equal(t, "shpat_test", creds.AccessToken)
}

func TestFormatCell(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", formatCell(nil))
	assert.Equal(t, "open", formatCell("open"))
	assert.Equal(t, "9007199254740993", formatCell(json.Number("9007199254740993")))
	assert.Equal(t, "true", formatCell(true))
}
