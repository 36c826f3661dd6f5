package shopify

import (
	"context"
	"time"
)

// Readable is the read surface of a resource repository: single-shot lookups
// plus since-id iteration over the whole collection.
type Readable interface {
	// Find fetches one record by id and unwraps the singular envelope key.
	Find(ctx context.Context, creds *Credentials, id int64, params Params) (Record, error)

	// Count returns the number of records matching params. One request.
	Count(ctx context.Context, creds *Credentials, params Params) (int, error)

	// Each invokes fn once per record in fetch order, fetching pages on
	// demand. A non-nil return from fn stops iteration and is returned.
	Each(ctx context.Context, creds *Credentials, params Params, fn func(Record) error) error

	// Iterate returns a pull-based iterator over the matching records.
	// Configuration errors (a fields restriction without id) surface here,
	// before any request is made.
	Iterate(ctx context.Context, creds *Credentials, params Params) (*RecordIterator, error)

	// All fetches every matching record into memory.
	All(ctx context.Context, creds *Credentials, params Params) ([]Record, error)
}

// Deletable is the delete surface of a resource repository.
type Deletable interface {
	// Delete removes one record by id.
	Delete(ctx context.Context, creds *Credentials, id int64) error
}

// Repository combines the read and delete capabilities every resource
// repository exposes.
type Repository interface {
	Readable
	Deletable
}

// Client provides access to the resource repositories.
type Client interface {
	Orders() Repository
	Customers() Repository
	Products() Repository
	Webhooks() Repository
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a shopify.Client.
//
// Credentials are deliberately absent: every repository operation takes a
// *Credentials value, so one configured client serves any number of shops.
// Retry behavior can be tuned via RetryMax/RetryWaitMin/RetryWaitMax and
// covers 429 and 5xx responses; everything else fails fast.
type Config struct {
	// APIVersion is the Admin API version segment of request URLs
	// (e.g. "2024-01"). Defaults to a recent stable version.
	APIVersion string

	// RetryMax is the maximum number of retries for transient failures.
	// If 0, a sensible default is used.
	RetryMax int

	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool

	// Logger is an optional structured logger used by the transport and the
	// repositories.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Cache optionally enables GET response caching. Nil disables caching.
	Cache *CacheConfig
}
