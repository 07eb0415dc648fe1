package repository

import "github.com/seu-usuario/estoque-api/internal/domain/entity"

// MovimentacaoRepository define a porta de persistência do ledger.
// Append-only: não há Atualizar nem Remover.
type MovimentacaoRepository interface {
	Criar(movimentacao *entity.Movimentacao) error
	BuscarPorID(id string) (*entity.Movimentacao, error)
	// Listar devolve movimentações em ordem de inserção. Inverter para
	// exibir as mais recentes primeiro é decisão da camada de apresentação.
	Listar(limit, offset int) ([]*entity.Movimentacao, error)
	ListarPorProduto(produto string, limit, offset int) ([]*entity.Movimentacao, error)
}
