// Package cnpj provides a typed client for consultar.io's CNPJ lookup,
// covering organizations registered with the Brazilian federal registry.
package cnpj

import (
	"context"
	"net/url"

	consultario "github.com/consultario/consultario-go"
)

// LookupClient defines the interface for CNPJ operations.
// Implement this interface for testing with mocks.
type LookupClient interface {
	Lookup(ctx context.Context, number string, opts ...consultario.RequestOption) (*Company, error)
}

// Client is a CNPJ service client.
type Client struct {
	client consultario.Querier
}

// NewClient creates a new CNPJ client.
func NewClient(c consultario.Querier) *Client {
	return &Client{client: c}
}

// Ensure Client implements LookupClient.
var _ LookupClient = (*Client)(nil)

// Company represents an organization's registry record.
// Field names mirror the API response keys; absent fields decode as
// zero values rather than failing.
type Company struct {
	CNPJFormatado           string `json:"cnpj_formatado"`
	RazaoSocial             string `json:"razao_social"`
	NomeFantasia            string `json:"nome_fantasia"`
	NaturezaJuridica        string `json:"natureza_juridica_descricao"`
	CapitalSocial           string `json:"capital_social_formatado"`
	Porte                   string `json:"porte_empresa_descricao"`
	MatrizFilial            string `json:"matriz_filial_descricao"`
	SituacaoCadastral       string `json:"situacao_cadastral_descricao"`
	DataSituacaoCadastral   string `json:"data_situacao_cadastral"`
	MotivoSituacaoCadastral string `json:"motivo_situacao_cadastral_descricao"`
	DataInicioAtividades    string `json:"data_inicio_atividades"`

	TipoLogradouro string `json:"tipo_logradouro"`
	Logradouro     string `json:"logradouro"`
	Numero         string `json:"numero"`
	Complemento    string `json:"complemento"`
	Bairro         string `json:"bairro"`
	Municipio      string `json:"municipio_descricao"`
	UF             string `json:"uf"`
	CEP            string `json:"cep"`

	DDD1      string `json:"ddd1"`
	Telefone1 string `json:"telefone1"`
	DDD2      string `json:"ddd2"`
	Telefone2 string `json:"telefone2"`
	DDDFax    string `json:"ddd_fax"`
	Fax       string `json:"fax"`
	Email     string `json:"email"`

	CNAEPrincipalCodigo    string     `json:"cnae_principal_codigo"`
	CNAEPrincipalDescricao string     `json:"cnae_principal_descricao"`
	CNAESecundarios        []Activity `json:"lista_cnae_secundarios"`
	QSA                    []Partner  `json:"lista_qsa"`
}

// Activity is a CNAE economic-activity classification entry.
type Activity struct {
	Codigo    string `json:"codigo"`
	Descricao string `json:"descricao"`
}

// Partner is an ownership/board record (QSA entry).
type Partner struct {
	Nome         string `json:"nome_qsa"`
	Tipo         string `json:"tipo_qsa_descricao"`
	CPFCNPJ      string `json:"cpf_cnpj_qsa_formatado"`
	Qualificacao string `json:"qualificacao_qsa_descricao"`
	DataEntrada  string `json:"data_entrada_qsa"`
	FaixaEtaria  string `json:"faixa_etaria_qsa_descricao"`
}

// Lookup retrieves the registry record for a CNPJ number.
// The number is passed through as given; the API expects 14 digits.
//
// Example:
//
//	company, err := api.Lookup(ctx, "42515236000100")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(company.RazaoSocial)
func (c *Client) Lookup(ctx context.Context, number string, opts ...consultario.RequestOption) (*Company, error) {
	params := url.Values{}
	params.Set("cnpj", number)

	var company Company
	if err := c.client.Get(ctx, "cnpj", params, &company, opts...); err != nil {
		return nil, err
	}
	return &company, nil
}

// Message returns the user-facing message for a lookup error, with the
// resource-specific not-found wording.
func Message(err error) string {
	if consultario.IsNotFound(err) {
		return "CNPJ não encontrado"
	}
	return consultario.UserMessage(err)
}
