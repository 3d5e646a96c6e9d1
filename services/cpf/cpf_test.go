package cpf_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	consultario "github.com/consultario/consultario-go"
	"github.com/consultario/consultario-go/services/cpf"
)

const lookupFixture = `{
	"cpf": "871.357.400-09",
	"nome": "FULANO DE TAL",
	"data_nascimento": "01/01/1990",
	"situacao": "Regular",
	"data_inscricao": "10/05/2005",
	"digito_verificador": "09",
	"codigo_controle": "A1B2.C3D4.E5F6",
	"data_emissao": "28/08/2026",
	"hora_emissao": "14:32:10",
	"qrcode_url": "https://consultar.io/qr/A1B2C3"
}`

func newServer(t *testing.T, handler http.HandlerFunc) *cpf.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := consultario.New(
		consultario.WithToken("test-token"),
		consultario.WithBaseURL(srv.URL),
	)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return cpf.NewClient(client)
}

func TestLookup(t *testing.T) {
	var gotPath, gotCPF, gotBirthDate string
	api := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCPF = r.URL.Query().Get("cpf")
		gotBirthDate = r.URL.Query().Get("data_nascimento")
		w.Write([]byte(lookupFixture))
	})

	nascimento := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	person, err := api.Lookup(context.Background(), "87135740009", nascimento)
	require.NoError(t, err)

	assert.Equal(t, "/cpf/consultar", gotPath)
	assert.Equal(t, "87135740009", gotCPF)
	assert.Equal(t, "1990-01-01", gotBirthDate)

	assert.Equal(t, "871.357.400-09", person.CPF)
	assert.Equal(t, "FULANO DE TAL", person.Nome)
	assert.Equal(t, "Regular", person.Situacao)
	assert.Equal(t, "A1B2.C3D4.E5F6", person.CodigoControle)
	assert.Equal(t, "https://consultar.io/qr/A1B2C3", person.QRCodeURL)
}

func TestLookupString(t *testing.T) {
	var gotBirthDate string
	api := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotBirthDate = r.URL.Query().Get("data_nascimento")
		w.Write([]byte(lookupFixture))
	})

	_, err := api.LookupString(context.Background(), "87135740009", "1990-01-01")
	require.NoError(t, err)
	assert.Equal(t, "1990-01-01", gotBirthDate)
}

func TestLookupNotFound(t *testing.T) {
	api := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := api.LookupString(context.Background(), "00000000000", "1990-01-01")
	require.Error(t, err)
	assert.True(t, consultario.IsNotFound(err))
	assert.Equal(t, "CPF não encontrado", cpf.Message(err))
}

func TestLookupAuthError(t *testing.T) {
	api := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := api.LookupString(context.Background(), "87135740009", "1990-01-01")
	require.Error(t, err)
	assert.Equal(t, "Erro de autenticação ou plano inativo", cpf.Message(err))
}
