package entity

import "time"

// Produto representa um item do catálogo. Nome é único no catálogo e serve de
// chave de referência para movimentações. Quantidade é o estoque atual e só é
// alterada pelo motor de movimentações — sempre igual à quantidade inicial
// mais a soma dos deltas das movimentações registradas.
type Produto struct {
	ID         string
	Nome       string
	Quantidade int // sempre >= 0
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
