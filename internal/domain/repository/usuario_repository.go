package repository

import "github.com/seu-usuario/estoque-api/internal/domain/entity"

// UsuarioRepository define a porta de persistência para Usuario.
type UsuarioRepository interface {
	Criar(usuario *entity.Usuario) error
	BuscarPorEmail(email string) (*entity.Usuario, error)
	BuscarPorID(id string) (*entity.Usuario, error)
}
