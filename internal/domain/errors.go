package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
// As mensagens são as mesmas exibidas ao usuário final, em pt-BR.
var (
	ErrNaoEncontrado        = errors.New("recurso não encontrado")
	ErrCamposObrigatorios   = errors.New("por favor, preencha todos os campos obrigatórios")
	ErrProdutoNaoEncontrado = errors.New("produto não encontrado. selecione um produto da lista")
	ErrQuantidadeInvalida   = errors.New("quantidade deve ser um número inteiro positivo")
	ErrDataInvalida         = errors.New("data inválida")
	ErrNomeJaExiste         = errors.New("já existe um produto com esse nome")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrEmailJaCadastrado    = errors.New("o email já está cadastrado")
	ErrNaoAutorizado        = errors.New("não autorizado")

	// ErrEstoqueNegativo indica quebra de invariante: o validador já deveria
	// ter barrado a saída. Nunca é um erro do usuário.
	ErrEstoqueNegativo = errors.New("movimentação resultaria em estoque negativo")
)

// ErrEstoqueInsuficiente rejeita uma saída maior que o estoque atual.
// Carrega a quantidade disponível para o chamador exibir.
type ErrEstoqueInsuficiente struct {
	Disponivel int
}

func (e *ErrEstoqueInsuficiente) Error() string {
	return fmt.Sprintf("estoque insuficiente. disponível: %d unidades", e.Disponivel)
}

// EstoqueInsuficiente constrói o erro com o disponível atual.
func EstoqueInsuficiente(disponivel int) error {
	return &ErrEstoqueInsuficiente{Disponivel: disponivel}
}
