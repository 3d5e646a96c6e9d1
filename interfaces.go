package consultario

import (
	"context"
	"net/url"
)

// Querier provides lookup operations on the consultar.io API.
// The typed service clients accept any Querier, so tests can substitute
// a mock for the real Client.
type Querier interface {
	// Get performs a lookup on a resource and unmarshals the result into dst.
	Get(ctx context.Context, resource string, params url.Values, dst any, opts ...RequestOption) error

	// GetRaw performs a lookup on a resource and returns the raw response.
	GetRaw(ctx context.Context, resource string, params url.Values, opts ...RequestOption) (*Response, error)
}

// Ensure Client implements Querier.
var _ Querier = (*Client)(nil)
