package transport

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTransport is a scripted Transport for fallback tests.
type stubTransport struct {
	name   string
	resp   *Response
	err    error
	calls  int
	closed bool
}

func (s *stubTransport) Name() string { return s.name }

func (s *stubTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func (s *stubTransport) Close() error {
	s.closed = true
	return nil
}

func TestMultiFallsBackOnTransportError(t *testing.T) {
	primary := &stubTransport{name: "primary", err: errors.New("refused")}
	secondary := &stubTransport{name: "secondary", resp: &Response{StatusCode: 200}}

	m := NewMulti(primary, secondary)
	resp, err := m.Do(context.Background(), &Request{Path: "cnpj/consultar"})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestMultiDoesNotFallBackOnHTTPStatus(t *testing.T) {
	// A 5xx is a response, not a transport failure; no fallback
	primary := &stubTransport{name: "primary", resp: &Response{StatusCode: 503}}
	secondary := &stubTransport{name: "secondary", resp: &Response{StatusCode: 200}}

	m := NewMulti(primary, secondary)
	resp, err := m.Do(context.Background(), &Request{Path: "cnpj/consultar"})
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
	assert.Zero(t, secondary.calls)
}

func TestMultiReturnsLastError(t *testing.T) {
	first := errors.New("first")
	second := errors.New("second")
	m := NewMulti(
		&stubTransport{name: "a", err: first},
		&stubTransport{name: "b", err: second},
	)

	_, err := m.Do(context.Background(), &Request{})
	assert.ErrorIs(t, err, second)
}

func TestMultiName(t *testing.T) {
	m := NewMulti(&stubTransport{name: "http"}, &stubTransport{name: "mirror"})
	assert.Equal(t, "multi(http+fallback)", m.Name())
	assert.Equal(t, "multi", NewMulti().Name())
}

func TestMultiClose(t *testing.T) {
	a := &stubTransport{name: "a"}
	b := &stubTransport{name: "b"}
	m := NewMulti(a, b)

	require.NoError(t, m.Close())
	assert.True(t, a.closed)
	assert.True(t, b.closed)
}
