package estoque

import (
	"context"

	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante atomicidade do par
// atualização-de-quantidade + inserção-de-movimentação.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}

// Notificador recebe o aviso de catálogo alterado após cada commit
// bem-sucedido. Fire-and-forget: falha de notificação nunca desfaz o commit,
// e o núcleo não sabe quantos ouvintes existem.
type Notificador interface {
	CatalogoAlterado(mov *entity.Movimentacao)
}

// Notificadores distribui o mesmo evento para vários ouvintes.
type Notificadores []Notificador

func (ns Notificadores) CatalogoAlterado(mov *entity.Movimentacao) {
	for _, n := range ns {
		if n != nil {
			n.CatalogoAlterado(mov)
		}
	}
}
