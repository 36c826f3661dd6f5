package shopify

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired        = errors.New("config is required")
	ErrCredentialsRequired   = errors.New("credentials are required")
	ErrShopDomainRequired    = errors.New("shop domain is required")
	ErrAccessTokenRequired   = errors.New("access token is required")
	ErrPaginateWithoutID     = errors.New("attempt to paginate without id field")
	ErrUnsupportedParamValue = errors.New("unsupported parameter value type")
	ErrMissingEnvelopeKey    = errors.New("response envelope missing key")
	ErrNoMoreRecords         = errors.New("no more records")
)

// APIError represents a non-2xx response from the Admin API.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error (status %d)", e.StatusCode)
	}

	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// ParseAPIError builds an APIError from a response status code and body.
// The Admin API reports failures under an "errors" key that is either a
// plain string or a map of field name to messages; both forms are
// flattened. An undecodable body still yields an error carrying the status.
func ParseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var envelope struct {
		Errors interface{} `json:"errors"`
		Error  string      `json:"error"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return apiErr
	}

	switch errs := envelope.Errors.(type) {
	case string:
		apiErr.Message = errs
	case map[string]interface{}:
		apiErr.Message = flattenFieldErrors(errs)
	default:
		apiErr.Message = envelope.Error
	}

	return apiErr
}

func flattenFieldErrors(fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var parts []string

	for _, key := range keys {
		switch messages := fields[key].(type) {
		case []interface{}:
			for _, message := range messages {
				parts = append(parts, fmt.Sprintf("%s %v", key, message))
			}
		default:
			parts = append(parts, fmt.Sprintf("%s %v", key, messages))
		}
	}

	return strings.Join(parts, "; ")
}

// IsNotFound checks if the error is a not found API error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an authentication failure.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsRateLimited checks if the error is a rate limit rejection that survived
// the transport's retries.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

func hasStatus(err error, statusCode int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}

	return false
}
