package estoque

import (
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
)

// AplicarMovimentacao calcula a nova quantidade do produto: entrada soma,
// saída subtrai. Não persiste nada — o resultado é do orquestrador.
//
// Pré-condição: o chamador já validou suficiência para saída. Ainda assim a
// função nunca produz resultado negativo: devolve ErrEstoqueNegativo, que
// deve ser tratado como falha de invariante e não como erro do usuário.
func AplicarMovimentacao(atual int, tipo string, quantidade int) (int, error) {
	novo := atual + quantidade
	if tipo == entity.TipoSaida {
		novo = atual - quantidade
	}
	if novo < 0 {
		return 0, domain.ErrEstoqueNegativo
	}
	return novo, nil
}
