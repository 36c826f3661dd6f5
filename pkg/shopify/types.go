package shopify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Credentials identify one shop for a single API call. They are passed
// through to the transport on every request and never stored by the
// repositories, so one client can serve any number of shops.
type Credentials struct {
	// ShopDomain is the shop's myshopify domain. The ".myshopify.com"
	// suffix may be omitted.
	ShopDomain string

	// AccessToken is the Admin API access token for the shop.
	AccessToken string
}

// MyshopifyDomain returns the fully qualified myshopify domain.
func (c *Credentials) MyshopifyDomain() string {
	domain := strings.TrimSuffix(c.ShopDomain, "/")
	if !strings.Contains(domain, ".") {
		domain += ".myshopify.com"
	}

	return domain
}

// Record is a single decoded resource record. Numbers are preserved as
// json.Number so 64-bit ids survive decoding.
type Record map[string]interface{}

// ID returns the record's id field as an int64, or 0 when the field is
// missing or not numeric.
func (r Record) ID() int64 {
	switch v := r["id"].(type) {
	case json.Number:
		id, err := v.Int64()
		if err != nil {
			return 0
		}

		return id
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	default:
		return 0
	}
}

// DecodeRecords decodes the sequence of records under the given envelope key
// of a collection response body.
func DecodeRecords(body []byte, key string) ([]Record, error) {
	envelope, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}

	raw, ok := envelope[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingEnvelopeKey, key)
	}

	var records []Record

	err = unmarshalNumbers(raw, &records)
	if err != nil {
		return nil, fmt.Errorf("parsing %q records: %w", key, err)
	}

	return records, nil
}

// DecodeRecord decodes the single record under the given envelope key of a
// singular response body.
func DecodeRecord(body []byte, key string) (Record, error) {
	envelope, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}

	raw, ok := envelope[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingEnvelopeKey, key)
	}

	var record Record

	err = unmarshalNumbers(raw, &record)
	if err != nil {
		return nil, fmt.Errorf("parsing %q record: %w", key, err)
	}

	return record, nil
}

// DecodeCount decodes the count field of a count response body.
func DecodeCount(body []byte) (int, error) {
	var result struct {
		Count int `json:"count"`
	}

	err := json.Unmarshal(body, &result)
	if err != nil {
		return 0, fmt.Errorf("parsing count response: %w", err)
	}

	return result.Count, nil
}

func decodeEnvelope(body []byte) (map[string]json.RawMessage, error) {
	var envelope map[string]json.RawMessage

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing response envelope: %w", err)
	}

	return envelope, nil
}

func unmarshalNumbers(data []byte, target interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	//nolint:wrapcheck // callers wrap with the envelope key for context
	return decoder.Decode(target)
}
