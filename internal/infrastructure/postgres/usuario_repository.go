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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação de UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador de usuários.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Criar persiste um novo usuário.
func (r *UsuarioRepo) Criar(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, email, nome, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.Email, usuario.Nome, usuario.PasswordHash,
		usuario.CreatedAt, usuario.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// BuscarPorEmail obtém um usuário pelo email.
func (r *UsuarioRepo) BuscarPorEmail(email string) (*entity.Usuario, error) {
	query := `
		SELECT id, email, nome, password_hash, created_at, updated_at
		FROM usuarios WHERE email = $1`
	return r.buscar(query, email)
}

// BuscarPorID obtém um usuário por ID.
func (r *UsuarioRepo) BuscarPorID(id string) (*entity.Usuario, error) {
	query := `
		SELECT id, email, nome, password_hash, created_at, updated_at
		FROM usuarios WHERE id = $1`
	return r.buscar(query, id)
}

func (r *UsuarioRepo) buscar(query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Email, &u.Nome, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
