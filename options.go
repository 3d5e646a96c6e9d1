package consultario

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/consultario/consultario-go/transport"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = transport.DefaultEndpoint

// Option configures a Client.
type Option func(*clientConfig)

// clientConfig holds client configuration.
type clientConfig struct {
	token       string
	baseURL     string
	timeout     time.Duration
	retryConfig RetryConfig
	cacheConfig CacheConfig
	transports  []transport.Transport
	httpClient  *http.Client
	logger      *slog.Logger
}

// defaultConfig returns the default client configuration.
func defaultConfig() *clientConfig {
	return &clientConfig{
		baseURL:     DefaultBaseURL,
		timeout:     30 * time.Second,
		retryConfig: NoRetry(),
		cacheConfig: CacheConfig{},
	}
}

// WithToken sets the API token used for authentication.
func WithToken(token string) Option {
	return func(c *clientConfig) {
		c.token = token
	}
}

// WithBaseURL sets the API endpoint URL (default: DefaultBaseURL).
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithTimeout sets the request timeout (default: 30s).
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithRetry configures retry behavior. By default each lookup is a single
// attempt; pass DefaultRetryConfig() to enable backoff on transient failures.
func WithRetry(config RetryConfig) Option {
	return func(c *clientConfig) {
		c.retryConfig = config
	}
}

// WithCache configures response caching. Disabled by default.
func WithCache(config CacheConfig) Option {
	return func(c *clientConfig) {
		c.cacheConfig = config
	}
}

// WithTransports sets the transport priority order with automatic fallback.
// The first transport is tried first; on failure, subsequent transports are tried.
func WithTransports(transports ...transport.Transport) Option {
	return func(c *clientConfig) {
		c.transports = transports
	}
}

// WithHTTPClient sets a custom HTTP client for the default transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets a logger for debug-level request logging.
// By default the client logs nothing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// RequestOption configures a single request.
type RequestOption func(*requestConfig)

// requestConfig holds per-request configuration.
type requestConfig struct {
	skipCache bool
}

// WithSkipCache bypasses the cache for this request.
func WithSkipCache() RequestOption {
	return func(c *requestConfig) {
		c.skipCache = true
	}
}
