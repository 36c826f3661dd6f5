package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 5

	// DefaultRetryWaitMin is the minimum wait between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second

	// ExtendedRetryWaitMax is used for operations that need longer waits.
	ExtendedRetryWaitMax = 30 * time.Second
)

// Pagination defaults.
const (
	// DefaultPageLimit is the page size sent when the caller supplies none.
	DefaultPageLimit = 50

	// FirstSinceID is the cursor a fresh iteration starts from. Shopify ids
	// are monotonically increasing, so 1 covers the whole collection.
	FirstSinceID = 1
)

// Channel buffering.
const (
	// StreamBufferSize is the default buffer size for streamed page channels.
	StreamBufferSize = 10
)

// API defaults.
const (
	// DefaultAPIVersion is the Admin API version used when none is configured.
	DefaultAPIVersion = "2024-01"

	// DefaultUserAgent identifies the library on outgoing requests.
	DefaultUserAgent = "shopify-resource-go"
)
