package dto

import (
	"time"

	"github.com/seu-usuario/estoque-api/internal/domain/entity"
)

// CriarProdutoRequest body para POST /api/produtos.
// Quantidade aqui é o estoque inicial; depois da criação só o motor de
// movimentações altera esse campo.
type CriarProdutoRequest struct {
	Nome       string `json:"nome" validate:"required"`
	Quantidade int    `json:"quantidade" validate:"min=0"`
}

// AtualizarProdutoRequest body para PUT /api/produtos/:id.
// Não aceita quantidade: estoque só muda via movimentação.
type AtualizarProdutoRequest struct {
	Nome string `json:"nome" validate:"required"`
}

// ProdutoResponse representação de um produto do catálogo.
type ProdutoResponse struct {
	ID         string    `json:"id"`
	Nome       string    `json:"nome"`
	Quantidade int       `json:"quantidade"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToProdutoResponse converte a entidade para o DTO de resposta.
func ToProdutoResponse(p *entity.Produto) *ProdutoResponse {
	if p == nil {
		return nil
	}
	return &ProdutoResponse{
		ID:         p.ID,
		Nome:       p.Nome,
		Quantidade: p.Quantidade,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
