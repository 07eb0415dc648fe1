package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência de produtos.
// Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Criar persiste um novo produto. O índice único de nome devolve
// ErrNomeJaExiste em caso de corrida com outra criação.
func (r *ProdutoRepo) Criar(produto *entity.Produto) error {
	query := `
		INSERT INTO produtos (id, nome, quantidade, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.Quantidade, produto.CreatedAt, produto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNomeJaExiste
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// BuscarPorID obtém um produto por ID.
func (r *ProdutoRepo) BuscarPorID(id string) (*entity.Produto, error) {
	query := `
		SELECT id, nome, quantidade, created_at, updated_at
		FROM produtos WHERE id = $1`
	return r.buscar(query, id)
}

// BuscarPorNome obtém um produto pelo nome exato.
func (r *ProdutoRepo) BuscarPorNome(nome string) (*entity.Produto, error) {
	query := `
		SELECT id, nome, quantidade, created_at, updated_at
		FROM produtos WHERE nome = $1`
	return r.buscar(query, nome)
}

// BuscarPorNomeForUpdate obtém o produto e bloqueia a linha (SELECT FOR
// UPDATE) para serializar escritas concorrentes sobre o mesmo produto.
func (r *ProdutoRepo) BuscarPorNomeForUpdate(nome string) (*entity.Produto, error) {
	query := `
		SELECT id, nome, quantidade, created_at, updated_at
		FROM produtos WHERE nome = $1
		FOR UPDATE`
	return r.buscar(query, nome)
}

func (r *ProdutoRepo) buscar(query string, arg any) (*entity.Produto, error) {
	var p entity.Produto
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Nome, &p.Quantidade, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// AtualizarQuantidade altera somente a quantidade do produto (uso exclusivo
// do motor de movimentações).
func (r *ProdutoRepo) AtualizarQuantidade(id string, quantidade int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET quantidade = $2, updated_at = now() WHERE id = $1`,
		id, quantidade,
	)
	if err != nil {
		return fmt.Errorf("update quantidade: %w", err)
	}
	return nil
}

// Atualizar atualiza os dados cadastrais do produto. Não altera quantidade.
func (r *ProdutoRepo) Atualizar(produto *entity.Produto) error {
	query := `
		UPDATE produtos SET nome = $2, updated_at = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, produto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNomeJaExiste
		}
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// Listar lista produtos com paginação, em ordem de criação.
func (r *ProdutoRepo) Listar(limit, offset int) ([]*entity.Produto, error) {
	query := `
		SELECT id, nome, quantidade, created_at, updated_at
		FROM produtos ORDER BY created_at, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	return scanProdutos(rows)
}

// ListarTodos carrega o catálogo completo (snapshot de validação).
func (r *ProdutoRepo) ListarTodos() ([]*entity.Produto, error) {
	query := `
		SELECT id, nome, quantidade, created_at, updated_at
		FROM produtos ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	return scanProdutos(rows)
}

func scanProdutos(rows pgx.Rows) ([]*entity.Produto, error) {
	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(&p.ID, &p.Nome, &p.Quantidade, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
