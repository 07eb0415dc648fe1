package entity

import "time"

// Tipos de movimentação de estoque.
const (
	TipoEntrada = "entrada"
	TipoSaida   = "saida"
)

// TipoValido informa se o tipo é um dos valores aceitos.
func TipoValido(tipo string) bool {
	return tipo == TipoEntrada || tipo == TipoSaida
}

// Movimentacao representa um lançamento no ledger de estoque. Referencia o
// produto pelo nome. Imutável após criada: o ledger é append-only, não existe
// update nem delete de movimentação.
type Movimentacao struct {
	ID         string
	Produto    string // nome do produto referenciado
	Tipo       string // entrada | saida
	Quantidade int    // magnitude, sempre > 0; o sinal vem do tipo
	Data       time.Time
	Lote       string
	Fornecedor string // opcional
	CriadoPor  string
	CreatedAt  time.Time
}

// Delta devolve a variação de estoque com sinal derivado do tipo.
func (m *Movimentacao) Delta() int {
	if m.Tipo == TipoSaida {
		return -m.Quantidade
	}
	return m.Quantidade
}
