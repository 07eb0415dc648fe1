package entity

import "time"

// Usuario representa um usuário da aplicação (login do painel).
type Usuario struct {
	ID           string
	Email        string
	Nome         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
