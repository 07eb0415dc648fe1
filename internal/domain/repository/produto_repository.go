package repository

import "github.com/seu-usuario/estoque-api/internal/domain/entity"

// ProdutoRepository define a porta de persistência para Produto (DIP).
type ProdutoRepository interface {
	Criar(produto *entity.Produto) error
	BuscarPorID(id string) (*entity.Produto, error)
	BuscarPorNome(nome string) (*entity.Produto, error)
	// BuscarPorNomeForUpdate bloqueia a linha do produto (SELECT FOR UPDATE)
	// para serializar escritas concorrentes sobre o mesmo produto.
	BuscarPorNomeForUpdate(nome string) (*entity.Produto, error)
	// AtualizarQuantidade altera somente a quantidade (uso exclusivo do
	// motor de movimentações).
	AtualizarQuantidade(id string, quantidade int) error
	Atualizar(produto *entity.Produto) error
	Listar(limit, offset int) ([]*entity.Produto, error)
	// ListarTodos carrega o catálogo completo para o snapshot de validação.
	ListarTodos() ([]*entity.Produto, error)
}
