package cnpj_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	consultario "github.com/consultario/consultario-go"
	"github.com/consultario/consultario-go/services/cnpj"
)

const lookupFixture = `{
	"cnpj_formatado": "42.515.236/0001-00",
	"razao_social": "ACME COMERCIO LTDA",
	"nome_fantasia": "ACME",
	"natureza_juridica_descricao": "Sociedade Empresária Limitada",
	"capital_social_formatado": "R$ 100.000,00",
	"porte_empresa_descricao": "Microempresa",
	"matriz_filial_descricao": "Matriz",
	"situacao_cadastral_descricao": "Ativa",
	"data_situacao_cadastral": "2021-06-15",
	"motivo_situacao_cadastral_descricao": "Sem motivo",
	"data_inicio_atividades": "2021-06-01",
	"tipo_logradouro": "Avenida",
	"logradouro": "Paulista",
	"numero": "1000",
	"complemento": "Sala 12",
	"bairro": "Bela Vista",
	"municipio_descricao": "São Paulo",
	"uf": "SP",
	"cep": "01310-100",
	"ddd1": "11",
	"telefone1": "33334444",
	"ddd2": "",
	"telefone2": "",
	"ddd_fax": "",
	"fax": "",
	"email": "contato@acme.com.br",
	"cnae_principal_codigo": "4751-2/01",
	"cnae_principal_descricao": "Comércio varejista especializado de equipamentos de informática",
	"lista_cnae_secundarios": [
		{"codigo": "4752-1/00", "descricao": "Comércio varejista de equipamentos de telefonia"}
	],
	"lista_qsa": [
		{
			"nome_qsa": "FULANO DE TAL",
			"tipo_qsa_descricao": "Pessoa Física",
			"cpf_cnpj_qsa_formatado": "***.740.009-**",
			"qualificacao_qsa_descricao": "Sócio-Administrador",
			"data_entrada_qsa": "2021-06-01",
			"faixa_etaria_qsa_descricao": "31 a 40 anos"
		}
	]
}`

func newServer(t *testing.T, handler http.HandlerFunc) *cnpj.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := consultario.New(
		consultario.WithToken("test-token"),
		consultario.WithBaseURL(srv.URL),
	)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return cnpj.NewClient(client)
}

func TestLookup(t *testing.T) {
	var gotPath, gotCNPJ string
	api := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCNPJ = r.URL.Query().Get("cnpj")
		w.Write([]byte(lookupFixture))
	})

	company, err := api.Lookup(context.Background(), "42515236000100")
	require.NoError(t, err)

	assert.Equal(t, "/cnpj/consultar", gotPath)
	assert.Equal(t, "42515236000100", gotCNPJ)

	assert.Equal(t, "42.515.236/0001-00", company.CNPJFormatado)
	assert.Equal(t, "ACME COMERCIO LTDA", company.RazaoSocial)
	assert.Equal(t, "Sociedade Empresária Limitada", company.NaturezaJuridica)
	assert.Equal(t, "São Paulo", company.Municipio)
	assert.Equal(t, "11", company.DDD1)
	assert.Empty(t, company.DDD2)

	require.Len(t, company.CNAESecundarios, 1)
	assert.Equal(t, "4752-1/00", company.CNAESecundarios[0].Codigo)

	require.Len(t, company.QSA, 1)
	assert.Equal(t, "FULANO DE TAL", company.QSA[0].Nome)
	assert.Equal(t, "31 a 40 anos", company.QSA[0].FaixaEtaria)
}

func TestLookupToleratesMissingFields(t *testing.T) {
	api := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"razao_social": "ACME LTDA"}`))
	})

	company, err := api.Lookup(context.Background(), "42515236000100")
	require.NoError(t, err)
	assert.Equal(t, "ACME LTDA", company.RazaoSocial)
	assert.Empty(t, company.CNPJFormatado)
	assert.Empty(t, company.QSA)
}

func TestLookupNotFound(t *testing.T) {
	api := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := api.Lookup(context.Background(), "00000000000000")
	require.Error(t, err)
	assert.True(t, consultario.IsNotFound(err))
	assert.Equal(t, "CNPJ não encontrado", cnpj.Message(err))
}

func TestLookupAuthError(t *testing.T) {
	api := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := api.Lookup(context.Background(), "42515236000100")
	require.Error(t, err)
	assert.True(t, consultario.IsAuthError(err))

	// The exact line the example binaries print for this case
	assert.Equal(t,
		"Erro: Erro de autenticação ou plano inativo",
		fmt.Sprintf("Erro: %s", cnpj.Message(err)),
	)
}

func TestLookupBadRequest(t *testing.T) {
	api := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := api.Lookup(context.Background(), "not-a-cnpj")
	require.Error(t, err)
	assert.True(t, consultario.IsBadRequest(err))
	assert.Equal(t, "Requisição inválida", cnpj.Message(err))
}
