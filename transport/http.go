package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is the production API endpoint.
const DefaultEndpoint = "https://consultar.io/api/v1"

// HTTP implements Transport over plain HTTPS.
type HTTP struct {
	endpoint   string
	httpClient *http.Client
}

// HTTPOption configures an HTTP transport.
type HTTPOption func(*HTTP)

// WithEndpoint sets the API endpoint URL.
func WithEndpoint(url string) HTTPOption {
	return func(h *HTTP) {
		h.endpoint = url
	}
}

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) HTTPOption {
	return func(h *HTTP) {
		h.httpClient = client
	}
}

// NewHTTP creates a new HTTPS transport.
func NewHTTP(opts ...HTTPOption) *HTTP {
	h := &HTTP{
		endpoint: DefaultEndpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *HTTP) Name() string { return "http" }

func (h *HTTP) Close() error {
	h.httpClient.CloseIdleConnections()
	return nil
}

// Do sends an API request over HTTPS.
func (h *HTTP) Do(ctx context.Context, req *Request) (*Response, error) {
	u, err := url.Parse(h.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(req.Path, "/")
	u.RawQuery = req.Query.Encode()

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := h.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
