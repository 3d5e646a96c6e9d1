package consultario

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for use with errors.Is.
// Messages follow the wording of the hosted API's documentation.
var (
	// ErrBadRequest indicates a malformed lookup (HTTP 400).
	ErrBadRequest = &APIError{StatusCode: http.StatusBadRequest, Message: "Requisição inválida"}

	// ErrForbidden indicates an authentication failure or an inactive
	// subscription plan (HTTP 403).
	ErrForbidden = &APIError{StatusCode: http.StatusForbidden, Message: "Erro de autenticação ou plano inativo"}

	// ErrNotFound indicates the queried identifier has no registry record (HTTP 404).
	ErrNotFound = &APIError{StatusCode: http.StatusNotFound, Message: "Registro não encontrado"}

	// ErrRateLimited indicates the plan's request quota was exceeded (HTTP 429).
	ErrRateLimited = &APIError{StatusCode: http.StatusTooManyRequests, Message: "Limite de requisições excedido"}
)

// APIError represents a classified error response from the API.
type APIError struct {
	StatusCode int    // HTTP status that produced the error
	Message    string // Human-readable message
	Body       string // Raw response body, if any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("consultario: %s (HTTP %d)", e.Message, e.StatusCode)
}

// Is implements errors.Is for error comparison.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// Retryable returns true if the error is transient and the request can be retried.
func (e *APIError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// TransportError represents a failure below the API contract: a network-level
// error (no status code) or an HTTP status outside the documented set.
type TransportError struct {
	StatusCode int    // HTTP status, 0 for network-level failures
	Body       string // Raw response body, if any
	Err        error  // Underlying error for network-level failures
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("consultario: falha na requisição: %v", e.Err)
	}
	return fmt.Sprintf("consultario: resposta inesperada HTTP %d: %s", e.StatusCode, truncate(e.Body, 200))
}

func (e *TransportError) Unwrap() error { return e.Err }

// Retryable returns true if the failure is transient.
func (e *TransportError) Retryable() bool {
	return e.StatusCode == 0 || e.StatusCode >= 500
}

// FieldError indicates a field expected in the API response is absent.
type FieldError struct {
	Key string // The missing field name
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("consultario: campo ausente na resposta: %q", e.Key)
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr.Retryable()
	}
	return false
}

// IsNotFound checks if an error indicates the identifier has no registry record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAuthError checks if an error indicates authentication failure or an
// inactive plan.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsBadRequest checks if an error indicates a malformed lookup.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

// IsTransport checks if an error is a transport-level failure.
func IsTransport(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}

// UserMessage returns the user-facing message for a classified error.
// Unclassified errors fall back to their Error string.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// classifyStatus maps a non-2xx HTTP status to an error.
func classifyStatus(status int, body []byte) error {
	switch status {
	case http.StatusBadRequest:
		return &APIError{StatusCode: status, Message: ErrBadRequest.Message, Body: string(body)}
	case http.StatusForbidden:
		return &APIError{StatusCode: status, Message: ErrForbidden.Message, Body: string(body)}
	case http.StatusNotFound:
		return &APIError{StatusCode: status, Message: ErrNotFound.Message, Body: string(body)}
	case http.StatusTooManyRequests:
		return &APIError{StatusCode: status, Message: ErrRateLimited.Message, Body: string(body)}
	default:
		return &TransportError{StatusCode: status, Body: string(body)}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
