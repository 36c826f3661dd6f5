package shopify_test

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"github.com/lucidnz/shopify-resource/pkg/shopify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("backend unavailable")

// pagedFetcher serves fixed pages keyed by the since_id cursor and records
// every cursor value it was asked for.
type pagedFetcher struct {
	pages    map[int64][]shopify.Record
	requests []int64
	err      error
}

func (f *pagedFetcher) fetch(_ context.Context, sinceID int64) ([]shopify.Record, error) {
	f.requests = append(f.requests, sinceID)
	if f.err != nil {
		return nil, f.err
	}

	return f.pages[sinceID], nil
}

func record(id int64) shopify.Record {
	return shopify.Record{"id": json.Number(strconv.FormatInt(id, 10))}
}

func TestRecordIterator_AdvancesCursor(t *testing.T) {
	t.Parallel()

	fetcher := &pagedFetcher{pages: map[int64][]shopify.Record{
		1: {record(1), record(2)},
		2: {record(3)},
		3: {},
	}}

	it := shopify.NewRecordIterator(context.Background(), fetcher.fetch, 1)

	var ids []int64
	for it.HasNext() {
		rec, err := it.Next()
		require.NoError(t, err)
		ids = append(ids, rec.ID())
	}

	require.NoError(t, it.Err())
	assert.Equal(t, []int64{1, 2, 3}, ids)
	assert.Equal(t, []int64{1, 2, 3}, fetcher.requests)
}

func TestRecordIterator_StartsFromGivenCursor(t *testing.T) {
	t.Parallel()

	fetcher := &pagedFetcher{pages: map[int64][]shopify.Record{
		100: {record(101)},
		101: {},
	}}

	it := shopify.NewRecordIterator(context.Background(), fetcher.fetch, 100)

	records, err := it.All()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(101), records[0].ID())
	assert.Equal(t, []int64{100, 101}, fetcher.requests)
}

func TestRecordIterator_EarlyTerminationStopsFetching(t *testing.T) {
	t.Parallel()

	fetcher := &pagedFetcher{pages: map[int64][]shopify.Record{
		1: {record(1), record(2)},
		2: {record(3)},
	}}

	it := shopify.NewRecordIterator(context.Background(), fetcher.fetch, 1)

	require.True(t, it.HasNext())

	rec, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID())

	// abandoning the iterator here must not trigger further requests
	assert.Equal(t, []int64{1}, fetcher.requests)
}

func TestRecordIterator_ErrorPoisonsIterator(t *testing.T) {
	t.Parallel()

	fetcher := &pagedFetcher{err: errBackend}

	it := shopify.NewRecordIterator(context.Background(), fetcher.fetch, 1)

	assert.False(t, it.HasNext())

	_, err := it.Next()
	require.ErrorIs(t, err, errBackend)
	require.ErrorIs(t, it.Err(), errBackend)

	// the failure is terminal, no retries
	assert.Equal(t, []int64{1}, fetcher.requests)
}

func TestRecordIterator_NextPastEnd(t *testing.T) {
	t.Parallel()

	fetcher := &pagedFetcher{pages: map[int64][]shopify.Record{}}

	it := shopify.NewRecordIterator(context.Background(), fetcher.fetch, 1)

	assert.False(t, it.HasNext())

	_, err := it.Next()
	require.ErrorIs(t, err, shopify.ErrNoMoreRecords)
}

func TestRecordIterator_ForEach(t *testing.T) {
	t.Parallel()

	t.Run("visits every record", func(t *testing.T) {
		t.Parallel()

		fetcher := &pagedFetcher{pages: map[int64][]shopify.Record{
			1: {record(1), record(2)},
			2: {},
		}}

		it := shopify.NewRecordIterator(context.Background(), fetcher.fetch, 1)

		var ids []int64
		err := it.ForEach(func(rec shopify.Record) error {
			ids = append(ids, rec.ID())
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2}, ids)
	})

	t.Run("consumer error stops iteration", func(t *testing.T) {
		t.Parallel()

		errStop := errors.New("stop")
		fetcher := &pagedFetcher{pages: map[int64][]shopify.Record{
			1: {record(1), record(2)},
			2: {record(3)},
		}}

		it := shopify.NewRecordIterator(context.Background(), fetcher.fetch, 1)

		var visited int
		err := it.ForEach(func(shopify.Record) error {
			visited++
			return errStop
		})
		require.ErrorIs(t, err, errStop)
		assert.Equal(t, 1, visited)
		assert.Equal(t, []int64{1}, fetcher.requests)
	})
}

func TestStreamRecords(t *testing.T) {
	t.Parallel()

	t.Run("delivers pages in order", func(t *testing.T) {
		t.Parallel()

		fetcher := &pagedFetcher{pages: map[int64][]shopify.Record{
			1: {record(1), record(2)},
			2: {record(3)},
			3: {},
		}}

		var ids []int64
		for result := range shopify.StreamRecords(context.Background(), fetcher.fetch, 1) {
			require.NoError(t, result.Err)
			for _, rec := range result.Records {
				ids = append(ids, rec.ID())
			}
		}

		assert.Equal(t, []int64{1, 2, 3}, ids)
	})

	t.Run("surfaces fetch errors", func(t *testing.T) {
		t.Parallel()

		fetcher := &pagedFetcher{err: errBackend}

		var errs []error
		for result := range shopify.StreamRecords(context.Background(), fetcher.fetch, 1) {
			if result.Err != nil {
				errs = append(errs, result.Err)
			}
		}

		require.Len(t, errs, 1)
		require.ErrorIs(t, errs[0], errBackend)
	})
}
