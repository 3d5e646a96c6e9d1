// Package cpf provides a typed client for consultar.io's CPF lookup,
// covering individuals registered with the Brazilian federal registry.
package cpf

import (
	"context"
	"net/url"
	"time"

	consultario "github.com/consultario/consultario-go"
)

// BirthDateLayout is the wire format for the birth date query parameter.
const BirthDateLayout = "2006-01-02"

// LookupClient defines the interface for CPF operations.
// Implement this interface for testing with mocks.
type LookupClient interface {
	Lookup(ctx context.Context, number string, birthDate time.Time, opts ...consultario.RequestOption) (*Person, error)
	LookupString(ctx context.Context, number, birthDate string, opts ...consultario.RequestOption) (*Person, error)
}

// Client is a CPF service client.
type Client struct {
	client consultario.Querier
}

// NewClient creates a new CPF client.
func NewClient(c consultario.Querier) *Client {
	return &Client{client: c}
}

// Ensure Client implements LookupClient.
var _ LookupClient = (*Client)(nil)

// Person represents an individual's registry record.
type Person struct {
	CPF               string `json:"cpf"`
	Nome              string `json:"nome"`
	DataNascimento    string `json:"data_nascimento"`
	Situacao          string `json:"situacao"`
	DataInscricao     string `json:"data_inscricao"`
	DigitoVerificador string `json:"digito_verificador"`
	CodigoControle    string `json:"codigo_controle"`
	DataEmissao       string `json:"data_emissao"`
	HoraEmissao       string `json:"hora_emissao"`
	QRCodeURL         string `json:"qrcode_url"`
}

// Lookup retrieves the registry record for a CPF number and birth date.
//
// Example:
//
//	nascimento := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
//	person, err := api.Lookup(ctx, "87135740009", nascimento)
func (c *Client) Lookup(ctx context.Context, number string, birthDate time.Time, opts ...consultario.RequestOption) (*Person, error) {
	return c.LookupString(ctx, number, birthDate.Format(BirthDateLayout), opts...)
}

// LookupString retrieves the registry record for a CPF number with the birth
// date already formatted as AAAA-MM-DD.
func (c *Client) LookupString(ctx context.Context, number, birthDate string, opts ...consultario.RequestOption) (*Person, error) {
	params := url.Values{}
	params.Set("cpf", number)
	params.Set("data_nascimento", birthDate)

	var person Person
	if err := c.client.Get(ctx, "cpf", params, &person, opts...); err != nil {
		return nil, err
	}
	return &person, nil
}

// Message returns the user-facing message for a lookup error, with the
// resource-specific not-found wording.
func Message(err error) string {
	if consultario.IsNotFound(err) {
		return "CPF não encontrado"
	}
	return consultario.UserMessage(err)
}
