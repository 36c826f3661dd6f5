package shopify

import (
	"context"

	"github.com/lucidnz/shopify-resource/internal/constants"
)

// PageFunc fetches the page of records with ids strictly greater than
// sinceID. An empty page signals the end of the collection.
type PageFunc func(ctx context.Context, sinceID int64) ([]Record, error)

// RecordIterator walks an unbounded collection through a since-id cursor.
// It buffers at most one page: a page is fetched only when the previous one
// is exhausted and the consumer asks for more, so stopping early performs no
// further network activity. After each non-empty page the cursor advances to
// the id of the page's last record; an empty page terminates iteration. A
// fetch error poisons the iterator and is returned from every subsequent
// call.
//
// Iterators are single-pass and not safe for concurrent use.
type RecordIterator struct {
	ctx     context.Context
	fetch   PageFunc
	sinceID int64
	page    []Record
	pos     int
	done    bool
	err     error
}

// NewRecordIterator creates an iterator starting at the given cursor.
func NewRecordIterator(ctx context.Context, fetch PageFunc, sinceID int64) *RecordIterator {
	return &RecordIterator{
		ctx:     ctx,
		fetch:   fetch,
		sinceID: sinceID,
	}
}

// HasNext reports whether another record is available, fetching the next
// page if the buffered one is exhausted.
func (it *RecordIterator) HasNext() bool {
	if it.err != nil || it.done {
		return false
	}

	if it.pos < len(it.page) {
		return true
	}

	it.fetchPage()

	return it.err == nil && !it.done
}

// Next returns the next record in fetch order. It returns ErrNoMoreRecords
// once the collection is exhausted, or the fetch error that ended iteration.
func (it *RecordIterator) Next() (Record, error) {
	if it.err != nil {
		return nil, it.err
	}

	if it.done {
		return nil, ErrNoMoreRecords
	}

	if it.pos >= len(it.page) {
		it.fetchPage()

		if it.err != nil {
			return nil, it.err
		}

		if it.done {
			return nil, ErrNoMoreRecords
		}
	}

	record := it.page[it.pos]
	it.pos++

	return record, nil
}

// Err returns the error that terminated iteration, if any.
func (it *RecordIterator) Err() error {
	return it.err
}

// ForEach invokes fn once per remaining record. A non-nil return from fn
// stops iteration and is returned; no further pages are fetched.
func (it *RecordIterator) ForEach(fn func(Record) error) error {
	for it.HasNext() {
		record, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(record)
		if err != nil {
			return err
		}
	}

	return it.err
}

// All collects every remaining record into memory.
func (it *RecordIterator) All() ([]Record, error) {
	var records []Record

	err := it.ForEach(func(record Record) error {
		records = append(records, record)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (it *RecordIterator) fetchPage() {
	page, err := it.fetch(it.ctx, it.sinceID)
	if err != nil {
		it.err = err
		it.page = nil
		it.done = true

		return
	}

	if len(page) == 0 {
		it.page = nil
		it.done = true

		return
	}

	it.page = page
	it.pos = 0
	it.sinceID = page[len(page)-1].ID()
}

// PageResult carries one streamed page or the terminal error.
type PageResult struct {
	Records []Record
	Err     error
}

// StreamRecords fetches pages in a goroutine and delivers them on the
// returned channel, which is closed after the last page or the first error.
// Unlike RecordIterator it fetches ahead of the consumer, buffering up to
// StreamBufferSize pages. Cancelling ctx stops the stream.
func StreamRecords(ctx context.Context, fetch PageFunc, sinceID int64) <-chan PageResult {
	results := make(chan PageResult, constants.StreamBufferSize)

	go func() {
		defer close(results)

		cursor := sinceID

		for {
			page, err := fetch(ctx, cursor)
			if err != nil {
				select {
				case results <- PageResult{Err: err}:
				case <-ctx.Done():
				}

				return
			}

			if len(page) == 0 {
				return
			}

			select {
			case results <- PageResult{Records: page}:
			case <-ctx.Done():
				return
			}

			cursor = page[len(page)-1].ID()
		}
	}()

	return results
}
