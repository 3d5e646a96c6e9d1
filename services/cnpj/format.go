package cnpj

import (
	"fmt"
	"io"
)

// Format writes a human-readable report of a company record.
//
// The report has fixed sections (basic info, address, contact, activities,
// ownership). Contact lines are printed only when both the area code and the
// number are present; the secondary-activity and ownership sections are
// omitted when empty.
func Format(w io.Writer, c *Company) {
	fmt.Fprintln(w, "\nInformações Básicas:")
	fmt.Fprintf(w, "CNPJ: %s\n", c.CNPJFormatado)
	fmt.Fprintf(w, "Razão Social: %s\n", c.RazaoSocial)
	fmt.Fprintf(w, "Nome Fantasia: %s\n", c.NomeFantasia)
	fmt.Fprintf(w, "Natureza Jurídica: %s\n", c.NaturezaJuridica)
	fmt.Fprintf(w, "Capital Social: %s\n", c.CapitalSocial)
	fmt.Fprintf(w, "Porte: %s\n", c.Porte)
	fmt.Fprintf(w, "Matriz/Filial: %s\n", c.MatrizFilial)
	fmt.Fprintf(w, "Situação Cadastral: %s\n", c.SituacaoCadastral)
	fmt.Fprintf(w, "Data da Situação: %s\n", c.DataSituacaoCadastral)
	fmt.Fprintf(w, "Motivo da Situação: %s\n", c.MotivoSituacaoCadastral)
	fmt.Fprintf(w, "Data de Abertura: %s\n", c.DataInicioAtividades)

	fmt.Fprintln(w, "\nEndereço:")
	fmt.Fprintf(w, "Tipo de Logradouro: %s\n", c.TipoLogradouro)
	fmt.Fprintf(w, "Logradouro: %s\n", c.Logradouro)
	fmt.Fprintf(w, "Número: %s\n", c.Numero)
	fmt.Fprintf(w, "Complemento: %s\n", c.Complemento)
	fmt.Fprintf(w, "Bairro: %s\n", c.Bairro)
	fmt.Fprintf(w, "Cidade: %s\n", c.Municipio)
	fmt.Fprintf(w, "UF: %s\n", c.UF)
	fmt.Fprintf(w, "CEP: %s\n", c.CEP)

	fmt.Fprintln(w, "\nContato:")
	if c.DDD1 != "" && c.Telefone1 != "" {
		fmt.Fprintf(w, "DDD: %s\n", c.DDD1)
		fmt.Fprintf(w, "Telefone: %s\n", c.Telefone1)
	}
	if c.DDD2 != "" && c.Telefone2 != "" {
		fmt.Fprintf(w, "DDD 2: %s\n", c.DDD2)
		fmt.Fprintf(w, "Telefone 2: %s\n", c.Telefone2)
	}
	if c.DDDFax != "" && c.Fax != "" {
		fmt.Fprintf(w, "DDD Fax: %s\n", c.DDDFax)
		fmt.Fprintf(w, "Fax: %s\n", c.Fax)
	}
	fmt.Fprintf(w, "Email: %s\n", c.Email)

	fmt.Fprintln(w, "\nAtividade Principal:")
	fmt.Fprintf(w, "Código CNAE: %s\n", c.CNAEPrincipalCodigo)
	fmt.Fprintf(w, "Descrição CNAE: %s\n", c.CNAEPrincipalDescricao)

	if len(c.CNAESecundarios) > 0 {
		fmt.Fprintln(w, "\nAtividades Secundárias:")
		for _, atividade := range c.CNAESecundarios {
			fmt.Fprintf(w, "Código: %s\n", atividade.Codigo)
			fmt.Fprintf(w, "Descrição: %s\n", atividade.Descricao)
		}
	}

	if len(c.QSA) > 0 {
		fmt.Fprintln(w, "\nQuadro Societário:")
		for _, socio := range c.QSA {
			fmt.Fprintf(w, "\nSócio: %s\n", socio.Nome)
			fmt.Fprintf(w, "Tipo: %s\n", socio.Tipo)
			fmt.Fprintf(w, "CPF/CNPJ: %s\n", socio.CPFCNPJ)
			fmt.Fprintf(w, "Qualificação: %s\n", socio.Qualificacao)
			fmt.Fprintf(w, "Data de Entrada: %s\n", socio.DataEntrada)
			if socio.FaixaEtaria != "" {
				fmt.Fprintf(w, "Faixa Etária: %s\n", socio.FaixaEtaria)
			}
		}
	}
}
