package consultario

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response represents a raw API response.
type Response struct {
	StatusCode int         // HTTP status code
	Header     http.Header // Response headers
	Data       []byte      // Raw response body, exactly as the API sent it
}

// IsSuccess returns true if the response indicates success.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Unmarshal decodes the response body into v.
func (r *Response) Unmarshal(v any) error {
	if len(r.Data) == 0 {
		return fmt.Errorf("consultario: resposta vazia")
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("json unmarshal: %w", err)
	}
	return nil
}

// String returns the raw body as a string.
func (r *Response) String() string {
	return string(r.Data)
}

// Fields decodes the response body as a Document for field-by-field access.
func (r *Response) Fields() (Document, error) {
	var d Document
	if err := r.Unmarshal(&d); err != nil {
		return nil, err
	}
	return d, nil
}

// Document is a decoded JSON response object. Its accessors make absent
// fields an explicit *FieldError instead of a zero value, so callers can
// tell a missing field from an empty one.
type Document map[string]any

// Has reports whether the field is present.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Get returns the raw value of a field.
func (d Document) Get(key string) (any, error) {
	v, ok := d[key]
	if !ok {
		return nil, &FieldError{Key: key}
	}
	return v, nil
}

// String returns a field as a string. Null fields decode as empty strings.
func (d Document) String(key string) (string, error) {
	v, err := d.Get(key)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("consultario: campo %q não é texto (%T)", key, v)
	}
	return s, nil
}

// Objects returns a field as a list of nested documents.
// Null fields decode as empty lists.
func (d Document) Objects(key string) ([]Document, error) {
	v, err := d.Get(key)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("consultario: campo %q não é uma lista (%T)", key, v)
	}
	docs := make([]Document, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("consultario: campo %q[%d] não é um objeto (%T)", key, i, item)
		}
		docs = append(docs, Document(obj))
	}
	return docs, nil
}
