package shopify

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Params is a query-string filter. Values are restricted to string, int,
// int64, and []string; anything else fails at encoding time with
// ErrUnsupportedParamValue.
type Params map[string]interface{}

// MergeParams overlays the given layers left to right, later layers fully
// replacing same-key values from earlier ones. Nil layers are skipped. The
// result is always a fresh map.
func MergeParams(layers ...Params) Params {
	merged := Params{}

	for _, layer := range layers {
		for key, value := range layer {
			merged[key] = value
		}
	}

	return merged
}

// Clone returns a shallow copy of p.
func (p Params) Clone() Params {
	return MergeParams(p)
}

// Normalized returns a copy of p with a []string value under "fields" joined
// into a single comma-separated string. Applying it twice is a no-op.
func (p Params) Normalized() Params {
	normalized := p.Clone()

	if fields, ok := normalized["fields"].([]string); ok {
		normalized["fields"] = strings.Join(fields, ",")
	}

	return normalized
}

// FieldList returns the logical list of field names requested under "fields",
// whether the value is still a []string or an already-joined string. A nil
// return means no field restriction.
func (p Params) FieldList() []string {
	switch fields := p["fields"].(type) {
	case []string:
		return fields
	case string:
		parts := strings.Split(fields, ",")
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}

		return parts
	default:
		return nil
	}
}

// HasField reports whether the field restriction includes name as a whole
// token. It always matches the logical field list, never substrings, so a
// restriction like "valid,tags" does not count as containing "id".
func (p Params) HasField(name string) bool {
	for _, field := range p.FieldList() {
		if field == name {
			return true
		}
	}

	return false
}

// Values encodes p for the query string. Keys are emitted in sorted order so
// encoded output is deterministic.
func (p Params) Values() (url.Values, error) {
	values := url.Values{}

	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		switch value := p[key].(type) {
		case string:
			values.Set(key, value)
		case int:
			values.Set(key, strconv.Itoa(value))
		case int64:
			values.Set(key, strconv.FormatInt(value, 10))
		case []string:
			values.Set(key, strings.Join(value, ","))
		default:
			return nil, fmt.Errorf("%w: %q is %T", ErrUnsupportedParamValue, key, value)
		}
	}

	return values, nil
}
