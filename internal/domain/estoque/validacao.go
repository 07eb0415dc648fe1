// Package estoque concentra as regras de negócio puras do ledger:
// validação de movimentações e aplicação do delta de estoque.
package estoque

import (
	"strconv"
	"strings"
	"time"

	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
)

// FormatoData é o formato aceito no campo data (input type=date).
const FormatoData = "2006-01-02"

// Requisicao é o pedido de movimentação como chega do chamador, ainda sem
// tipagem: quantidade e data vêm como texto de formulário.
type Requisicao struct {
	Produto    string
	Tipo       string
	Quantidade string
	Data       string
	Lote       string
	Fornecedor string
}

// Validada é o resultado de uma validação bem-sucedida: campos tipados e o
// produto do catálogo já resolvido.
type Validada struct {
	Produto    *entity.Produto
	Tipo       string
	Quantidade int
	Data       time.Time
	Lote       string
	Fornecedor string
}

// Validar checa uma requisição contra o snapshot do catálogo (nome -> Produto).
// Regras em ordem, a primeira falha vence:
//  1. campos obrigatórios presentes (produto, tipo, quantidade, data, lote)
//  2. produto existe no catálogo (nome exato)
//  3. quantidade é um inteiro positivo
//  4. para saída, estoque disponível >= quantidade
//  5. data é uma data válida
//
// Função pura: não tem efeitos colaterais e pode ser chamada quantas vezes
// for preciso.
func Validar(req Requisicao, catalogo map[string]*entity.Produto) (*Validada, error) {
	if vazio(req.Produto) || vazio(req.Tipo) || vazio(req.Quantidade) || vazio(req.Data) || vazio(req.Lote) {
		return nil, domain.ErrCamposObrigatorios
	}
	if !entity.TipoValido(req.Tipo) {
		return nil, domain.ErrCamposObrigatorios
	}

	produto, ok := catalogo[req.Produto]
	if !ok || produto == nil {
		return nil, domain.ErrProdutoNaoEncontrado
	}

	quantidade, err := strconv.Atoi(strings.TrimSpace(req.Quantidade))
	if err != nil || quantidade <= 0 {
		return nil, domain.ErrQuantidadeInvalida
	}

	if req.Tipo == entity.TipoSaida && produto.Quantidade < quantidade {
		return nil, domain.EstoqueInsuficiente(produto.Quantidade)
	}

	data, err := time.Parse(FormatoData, strings.TrimSpace(req.Data))
	if err != nil {
		return nil, domain.ErrDataInvalida
	}

	return &Validada{
		Produto:    produto,
		Tipo:       req.Tipo,
		Quantidade: quantidade,
		Data:       data,
		Lote:       strings.TrimSpace(req.Lote),
		Fornecedor: strings.TrimSpace(req.Fornecedor),
	}, nil
}

func vazio(s string) bool {
	return strings.TrimSpace(s) == ""
}
