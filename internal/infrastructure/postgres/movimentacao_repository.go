package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação do ledger sobre PostgreSQL (usável com pool
// ou tx). O ledger é append-only: este adaptador não expõe update nem delete.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Criar insere uma movimentação no ledger.
func (r *MovimentacaoRepo) Criar(mov *entity.Movimentacao) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movimentacoes (id, produto, tipo, quantidade, data, lote, fornecedor, criado_por, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	fornecedor := (*string)(nil)
	if mov.Fornecedor != "" {
		fornecedor = &mov.Fornecedor
	}
	criadoPor := (*string)(nil)
	if mov.CriadoPor != "" {
		criadoPor = &mov.CriadoPor
	}
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.Produto, mov.Tipo, mov.Quantidade, mov.Data,
		mov.Lote, fornecedor, criadoPor, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// BuscarPorID obtém uma movimentação por ID.
func (r *MovimentacaoRepo) BuscarPorID(id string) (*entity.Movimentacao, error) {
	query := `
		SELECT id, produto, tipo, quantidade, data, lote, fornecedor, criado_por, created_at
		FROM movimentacoes WHERE id = $1`
	var m entity.Movimentacao
	var fornecedor, criadoPor *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Produto, &m.Tipo, &m.Quantidade, &m.Data,
		&m.Lote, &fornecedor, &criadoPor, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimentacao: %w", err)
	}
	if fornecedor != nil {
		m.Fornecedor = *fornecedor
	}
	if criadoPor != nil {
		m.CriadoPor = *criadoPor
	}
	return &m, nil
}

// Listar lista movimentações em ordem de inserção.
func (r *MovimentacaoRepo) Listar(limit, offset int) ([]*entity.Movimentacao, error) {
	query := `
		SELECT id, produto, tipo, quantidade, data, lote, fornecedor, criado_por, created_at
		FROM movimentacoes ORDER BY created_at, id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()
	return scanMovimentacoes(rows)
}

// ListarPorProduto lista movimentações de um produto em ordem de inserção.
func (r *MovimentacaoRepo) ListarPorProduto(produto string, limit, offset int) ([]*entity.Movimentacao, error) {
	query := `
		SELECT id, produto, tipo, quantidade, data, lote, fornecedor, criado_por, created_at
		FROM movimentacoes WHERE produto = $1 ORDER BY created_at, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, produto, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes por produto: %w", err)
	}
	defer rows.Close()
	return scanMovimentacoes(rows)
}

func scanMovimentacoes(rows pgx.Rows) ([]*entity.Movimentacao, error) {
	var list []*entity.Movimentacao
	for rows.Next() {
		var m entity.Movimentacao
		var fornecedor, criadoPor *string
		if err := rows.Scan(&m.ID, &m.Produto, &m.Tipo, &m.Quantidade, &m.Data,
			&m.Lote, &fornecedor, &criadoPor, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		if fornecedor != nil {
			m.Fornecedor = *fornecedor
		}
		if criadoPor != nil {
			m.CriadoPor = *criadoPor
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
