package dto

import (
	"time"

	"github.com/seu-usuario/estoque-api/internal/domain/entity"
)

// FormatoDataExibicao é o formato pt-BR usado nas respostas (dd/mm/aaaa).
const FormatoDataExibicao = "02/01/2006"

// RegistrarMovimentacaoRequest body para POST /api/movimentacoes.
// Quantidade e Data chegam como texto (valores de formulário); a validação e
// conversão são do motor de movimentações, não do binding.
type RegistrarMovimentacaoRequest struct {
	Produto    string `json:"produto"`
	Tipo       string `json:"tipo"`
	Quantidade string `json:"quantidade"`
	Data       string `json:"data"` // aaaa-mm-dd
	Lote       string `json:"lote"`
	Fornecedor string `json:"fornecedor,omitempty"`
}

// MovimentacaoResponse representação de uma movimentação registrada.
type MovimentacaoResponse struct {
	ID         string    `json:"id"`
	Produto    string    `json:"produto"`
	Tipo       string    `json:"tipo"`
	Quantidade int       `json:"quantidade"`
	Data       string    `json:"data"` // dd/mm/aaaa
	Lote       string    `json:"lote"`
	Fornecedor string    `json:"fornecedor,omitempty"`
	CriadoPor  string    `json:"criado_por,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToMovimentacaoResponse converte a entidade para o DTO de resposta,
// normalizando a data para o formato de exibição pt-BR.
func ToMovimentacaoResponse(m *entity.Movimentacao) *MovimentacaoResponse {
	if m == nil {
		return nil
	}
	return &MovimentacaoResponse{
		ID:         m.ID,
		Produto:    m.Produto,
		Tipo:       m.Tipo,
		Quantidade: m.Quantidade,
		Data:       m.Data.Format(FormatoDataExibicao),
		Lote:       m.Lote,
		Fornecedor: m.Fornecedor,
		CriadoPor:  m.CriadoPor,
		CreatedAt:  m.CreatedAt,
	}
}
