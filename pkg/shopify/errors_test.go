package shopify_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lucidnz/shopify-resource/pkg/shopify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		statusCode      int
		body            string
		expectedMessage string
	}{
		{
			name:            "errors as string",
			statusCode:      http.StatusNotFound,
			body:            `{"errors": "Not Found"}`,
			expectedMessage: "Not Found",
		},
		{
			name:            "errors as field map",
			statusCode:      http.StatusUnprocessableEntity,
			body:            `{"errors": {"title": ["can't be blank"], "email": ["is invalid"]}}`,
			expectedMessage: "email is invalid; title can't be blank",
		},
		{
			name:            "singular error field",
			statusCode:      http.StatusUnauthorized,
			body:            `{"error": "invalid api key or access token"}`,
			expectedMessage: "invalid api key or access token",
		},
		{
			name:            "unparseable body still carries the status",
			statusCode:      http.StatusInternalServerError,
			body:            `<html>boom</html>`,
			expectedMessage: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := shopify.ParseAPIError(tt.statusCode, []byte(tt.body))
			require.Error(t, err)

			var apiErr *shopify.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, tt.expectedMessage, apiErr.Message)
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &shopify.APIError{StatusCode: http.StatusNotFound, Message: "Not Found"}
	assert.Equal(t, "Not Found (status 404)", err.Error())

	bare := &shopify.APIError{StatusCode: http.StatusInternalServerError}
	assert.Equal(t, "API error (status 500)", bare.Error())
}

func TestErrorClassifiers(t *testing.T) {
	t.Parallel()

	notFound := shopify.ParseAPIError(http.StatusNotFound, []byte(`{"errors":"Not Found"}`))
	unauthorized := shopify.ParseAPIError(http.StatusUnauthorized, []byte(`{"errors":"unauthorized"}`))
	rateLimited := shopify.ParseAPIError(http.StatusTooManyRequests, []byte(`{"errors":"throttled"}`))

	assert.True(t, shopify.IsNotFound(notFound))
	assert.False(t, shopify.IsNotFound(unauthorized))

	assert.True(t, shopify.IsUnauthorized(unauthorized))
	assert.False(t, shopify.IsUnauthorized(rateLimited))

	assert.True(t, shopify.IsRateLimited(rateLimited))
	assert.False(t, shopify.IsRateLimited(notFound))

	// wrapped errors still classify
	wrapped := fmt.Errorf("deleting order: %w", notFound)
	assert.True(t, shopify.IsNotFound(wrapped))

	// unrelated errors never classify
	assert.False(t, shopify.IsNotFound(errors.New("dial tcp: connection refused")))
}
