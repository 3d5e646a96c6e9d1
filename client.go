package consultario

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/consultario/consultario-go/transport"
)

// Client is a consultar.io API client.
// It is safe for concurrent use from multiple goroutines.
type Client struct {
	config    *clientConfig
	transport transport.Transport
	cache     Cache
}

// New creates a new consultar.io client with the given options.
//
// Example:
//
//	client, err := consultario.New(
//	    consultario.WithToken("your-api-token"),
//	)
func New(opts ...Option) (*Client, error) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Set up transport
	var t transport.Transport
	if len(config.transports) > 0 {
		if len(config.transports) == 1 {
			t = config.transports[0]
		} else {
			t = transport.NewMulti(config.transports...)
		}
	} else {
		httpOpts := []transport.HTTPOption{
			transport.WithEndpoint(config.baseURL),
		}
		if config.httpClient != nil {
			httpOpts = append(httpOpts, transport.WithClient(config.httpClient))
		} else if config.timeout > 0 {
			httpOpts = append(httpOpts, transport.WithClient(&http.Client{
				Timeout: config.timeout,
			}))
		}
		t = transport.NewHTTP(httpOpts...)
	}

	// Set up cache
	var cache Cache
	if config.cacheConfig.Enabled {
		cache = newMemoryCache(config.cacheConfig)
	} else {
		cache = noopCache{}
	}

	return &Client{
		config:    config,
		transport: t,
		cache:     cache,
	}, nil
}

// MustNew creates a new consultar.io client with the given options.
// Panics if the configuration is invalid.
// Use New() for error handling in production code.
func MustNew(opts ...Option) *Client {
	client, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return client
}

// validateConfig validates the client configuration.
func validateConfig(config *clientConfig) error {
	if config.token == "" {
		return fmt.Errorf("API token cannot be empty")
	}
	if config.baseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}
	if _, err := url.Parse(config.baseURL); err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if config.timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	return nil
}

// Get performs a lookup on a resource and unmarshals the result into dst.
//
// Example:
//
//	var company cnpj.Company
//	err := client.Get(ctx, "cnpj", url.Values{"cnpj": {"42515236000100"}}, &company)
func (c *Client) Get(ctx context.Context, resource string, params url.Values, dst any, opts ...RequestOption) error {
	resp, err := c.GetRaw(ctx, resource, params, opts...)
	if err != nil {
		return err
	}
	return resp.Unmarshal(dst)
}

// GetRaw performs a lookup on a resource and returns the raw response.
// The response body is returned exactly as the API sent it; no schema
// validation is performed.
func (c *Client) GetRaw(ctx context.Context, resource string, params url.Values, opts ...RequestOption) (*Response, error) {
	reqConfig := &requestConfig{}
	for _, opt := range opts {
		opt(reqConfig)
	}

	// Check cache
	cacheKey := buildCacheKey(resource, params)
	if !reqConfig.skipCache {
		if cached, ok := c.cache.Get(cacheKey); ok {
			return cached, nil
		}
	}

	// Execute lookup with retry
	resp, err := doWithRetry(ctx, c.config.retryConfig, func() (*Response, error) {
		return c.do(ctx, resource, params)
	})
	if err != nil {
		return nil, err
	}

	// Cache successful responses
	if resp.IsSuccess() && !reqConfig.skipCache {
		c.cache.Set(cacheKey, resp, 0)
	}

	return resp, nil
}

// Close releases resources held by the client.
func (c *Client) Close() error {
	return c.transport.Close()
}

// do sends a single lookup request and classifies the outcome.
func (c *Client) do(ctx context.Context, resource string, params url.Values) (*Response, error) {
	req := &transport.Request{
		Method: http.MethodGet,
		Path:   resource + "/consultar",
		Query:  params,
		Header: c.headers(),
	}

	start := time.Now()
	transportResp, err := c.transport.Do(ctx, req)
	if err != nil {
		c.log(ctx, resource, 0, start)
		return nil, &TransportError{Err: err}
	}
	c.log(ctx, resource, transportResp.StatusCode, start)

	if transportResp.StatusCode < 200 || transportResp.StatusCode >= 300 {
		return nil, classifyStatus(transportResp.StatusCode, transportResp.Body)
	}

	return &Response{
		StatusCode: transportResp.StatusCode,
		Header:     transportResp.Header,
		Data:       transportResp.Body,
	}, nil
}

// headers builds the request headers the API expects.
func (c *Client) headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Token "+c.config.token)
	h.Set("Content-Type", "application/json")
	return h
}

func (c *Client) log(ctx context.Context, resource string, status int, start time.Time) {
	if c.config.logger == nil {
		return
	}
	c.config.logger.DebugContext(ctx, "consulta",
		"resource", resource,
		"status", status,
		"duration", time.Since(start),
	)
}
