// Package transport provides HTTP transport implementations for the
// consultar.io API.
package transport

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// Transport defines the interface for API request transports.
type Transport interface {
	// Name returns the transport name (e.g., "http").
	Name() string

	// Do sends a request and returns the raw response.
	// Non-2xx statuses are returned as responses, not errors;
	// classification belongs to the caller.
	Do(ctx context.Context, req *Request) (*Response, error)

	// Close releases any resources held by the transport.
	Close() error
}

// Request represents an API request.
type Request struct {
	Method string      // HTTP method (GET for all lookup operations)
	Path   string      // Path relative to the endpoint, e.g. "cnpj/consultar"
	Query  url.Values  // Query parameters
	Header http.Header // Request headers
}

// Response represents a raw API response.
type Response struct {
	StatusCode int         // HTTP status code
	Header     http.Header // Response headers
	Body       []byte      // Raw response body
}

// Closer wraps io.Closer for transports that don't need cleanup.
type noopCloser struct{}

func (noopCloser) Close() error { return nil }

// EmbedCloser can be embedded in transport implementations that don't need Close().
type EmbedCloser struct{ noopCloser }

// Multi wraps multiple transports with automatic fallback.
// Only transport-level failures trigger fallback; an HTTP response,
// whatever its status, is final.
type Multi struct {
	transports []Transport
}

// NewMulti creates a multi-transport with fallback support.
func NewMulti(transports ...Transport) *Multi {
	return &Multi{transports: transports}
}

func (m *Multi) Name() string {
	if len(m.transports) > 0 {
		return "multi(" + m.transports[0].Name() + "+fallback)"
	}
	return "multi"
}

func (m *Multi) Do(ctx context.Context, req *Request) (*Response, error) {
	var lastErr error
	for _, t := range m.transports {
		resp, err := t.Do(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		// Continue to next transport on error
	}
	return nil, lastErr
}

func (m *Multi) Close() error {
	var errs []error
	for _, t := range m.transports {
		if closer, ok := t.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Transports returns the underlying transports.
func (m *Multi) Transports() []Transport {
	return m.transports
}
