// Package client implements the resource repositories over the Admin API
// transport. Each repository binds a resource descriptor to the shared HTTP
// client and logger; the read and delete behaviors all flow through the
// repository core in this file.
package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/lucidnz/shopify-resource/internal/constants"
	"github.com/lucidnz/shopify-resource/internal/http"
	"github.com/lucidnz/shopify-resource/pkg/shopify"
)

// Resource names one Admin API collection.
type Resource struct {
	// Name is the pluralized collection path segment, e.g. "orders".
	Name string

	// Singular is the response envelope key for single-record responses,
	// e.g. "order".
	Singular string
}

// repository is the shared implementation behind every resource repository.
// It holds no per-call state: the finalized parameter set and the since-id
// cursor live inside a single Each/Iterate invocation.
type repository struct {
	httpClient *http.Client
	resource   Resource
	defaults   shopify.Params
	logger     shopify.Logger
}

func newRepository(httpClient *http.Client, logger shopify.Logger, resource Resource, defaults shopify.Params) *repository {
	return &repository{
		httpClient: httpClient,
		resource:   resource,
		defaults:   defaults,
		logger:     logger,
	}
}

// finalizeParams overlays the platform default, the repository defaults, and
// the caller's params (lowest to highest precedence, full-value replacement
// per key) and normalizes the result. It is pure and idempotent.
func (r *repository) finalizeParams(params shopify.Params) shopify.Params {
	merged := shopify.MergeParams(
		shopify.Params{"limit": constants.DefaultPageLimit},
		r.defaults,
		params,
	)

	return merged.Normalized()
}

// Find implements shopify.Readable.
func (r *repository) Find(ctx context.Context, creds *shopify.Credentials, id int64, params shopify.Params) (shopify.Record, error) {
	query, err := r.finalizeParams(params).Values()
	if err != nil {
		return nil, err
	}

	r.info("fetching "+r.resource.Singular, map[string]interface{}{"id": id})

	resp, err := r.httpClient.Get(ctx, creds, fmt.Sprintf("%s/%d", r.resource.Name, id), query)
	if err != nil {
		return nil, fmt.Errorf("fetching %s %d: %w", r.resource.Singular, id, err)
	}

	record, err := shopify.DecodeRecord(resp.Body, r.resource.Singular)
	if err != nil {
		return nil, fmt.Errorf("decoding %s %d: %w", r.resource.Singular, id, err)
	}

	return record, nil
}

// Count implements shopify.Readable.
func (r *repository) Count(ctx context.Context, creds *shopify.Credentials, params shopify.Params) (int, error) {
	query, err := r.finalizeParams(params).Values()
	if err != nil {
		return 0, err
	}

	r.info("counting "+r.resource.Name, nil)

	resp, err := r.httpClient.Get(ctx, creds, r.resource.Name+"/count", query)
	if err != nil {
		return 0, fmt.Errorf("counting %s: %w", r.resource.Name, err)
	}

	count, err := shopify.DecodeCount(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("decoding %s count: %w", r.resource.Name, err)
	}

	return count, nil
}

// Delete implements shopify.Deletable.
func (r *repository) Delete(ctx context.Context, creds *shopify.Credentials, id int64) error {
	r.info("deleting "+r.resource.Singular, map[string]interface{}{"id": id})

	_, err := r.httpClient.Delete(ctx, creds, fmt.Sprintf("%s/%d", r.resource.Name, id))
	if err != nil {
		return fmt.Errorf("deleting %s %d: %w", r.resource.Singular, id, err)
	}

	return nil
}

// Iterate implements shopify.Readable. It finalizes the parameters once,
// validates the pagination precondition, extracts the starting cursor, and
// returns an iterator whose page fetches overlay only since_id onto the
// finalized query.
func (r *repository) Iterate(ctx context.Context, creds *shopify.Credentials, params shopify.Params) (*shopify.RecordIterator, error) {
	final := r.finalizeParams(params)

	// The cursor advances using the id of each page's last record, so a
	// fields restriction that drops id would stall pagination. Checked
	// against the logical field list before any request.
	if final.FieldList() != nil && !final.HasField("id") {
		return nil, fmt.Errorf("iterating %s: %w", r.resource.Name, shopify.ErrPaginateWithoutID)
	}

	sinceID := int64(constants.FirstSinceID)

	if raw, ok := final["since_id"]; ok {
		start, err := sinceIDValue(raw)
		if err != nil {
			return nil, fmt.Errorf("iterating %s: %w", r.resource.Name, err)
		}

		sinceID = start

		delete(final, "since_id")
	}

	query, err := final.Values()
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context, cursor int64) ([]shopify.Record, error) {
		r.info("fetching "+r.resource.Name, map[string]interface{}{"since_id": cursor})

		pageQuery := cloneValues(query)
		pageQuery.Set("since_id", strconv.FormatInt(cursor, 10))

		resp, err := r.httpClient.Get(ctx, creds, r.resource.Name, pageQuery)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", r.resource.Name, err)
		}

		records, err := shopify.DecodeRecords(resp.Body, r.resource.Name)
		if err != nil {
			return nil, fmt.Errorf("decoding %s page: %w", r.resource.Name, err)
		}

		return records, nil
	}

	return shopify.NewRecordIterator(ctx, fetch, sinceID), nil
}

// Each implements shopify.Readable.
func (r *repository) Each(ctx context.Context, creds *shopify.Credentials, params shopify.Params, fn func(shopify.Record) error) error {
	iterator, err := r.Iterate(ctx, creds, params)
	if err != nil {
		return err
	}

	return iterator.ForEach(fn)
}

// All implements shopify.Readable.
func (r *repository) All(ctx context.Context, creds *shopify.Credentials, params shopify.Params) ([]shopify.Record, error) {
	iterator, err := r.Iterate(ctx, creds, params)
	if err != nil {
		return nil, err
	}

	return iterator.All()
}

func (r *repository) info(msg string, fields map[string]interface{}) {
	if r.logger != nil {
		r.logger.Info(msg, fields)
	}
}

func sinceIDValue(raw interface{}) (int64, error) {
	switch value := raw.(type) {
	case int:
		return int64(value), nil
	case int64:
		return value, nil
	case string:
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing since_id: %w", err)
		}

		return id, nil
	default:
		return 0, fmt.Errorf("%w: %q is %T", shopify.ErrUnsupportedParamValue, "since_id", raw)
	}
}

func cloneValues(values url.Values) url.Values {
	cloned := make(url.Values, len(values))

	for key, value := range values {
		cloned[key] = append([]string(nil), value...)
	}

	return cloned
}
