// Package estoque orquestra o registro de movimentações: snapshot do
// catálogo, validação, mutação de estoque e persistência atômica.
package estoque

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	domestoque "github.com/seu-usuario/estoque-api/internal/domain/estoque"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
	"github.com/seu-usuario/estoque-api/pkg/logger"
)

// RegistrarMovimentacaoUseCase registra movimentações de forma transacional:
// valida contra um snapshot do catálogo, bloqueia a linha do produto
// (SELECT FOR UPDATE), aplica o delta e grava produto + movimentação na mesma
// transação. Rejeição não deixa nenhuma escrita parcial.
type RegistrarMovimentacaoUseCase struct {
	txRunner    TxRunner
	produtoRepo repository.ProdutoRepository
	notificador Notificador
	log         *logger.Logger
}

// NewRegistrarMovimentacaoUseCase constrói o caso de uso. notificador pode
// ser nil quando não há ouvintes (ex.: testes).
func NewRegistrarMovimentacaoUseCase(
	txRunner TxRunner,
	produtoRepo repository.ProdutoRepository,
	notificador Notificador,
	log *logger.Logger,
) *RegistrarMovimentacaoUseCase {
	return &RegistrarMovimentacaoUseCase{
		txRunner:    txRunner,
		produtoRepo: produtoRepo,
		notificador: notificador,
		log:         log,
	}
}

// Registrar processa um pedido de movimentação de ponta a ponta.
//
// Fora da transação: snapshot do catálogo + validação (rejeição barata, sem
// tocar em estado). Dentro da transação: releitura do produto com lock de
// linha, repetição do teste de suficiência contra a linha bloqueada (duas
// saídas concorrentes não podem passar ambas sobre um snapshot velho),
// mutação e as duas escritas. Commit ou rollback — nunca meio-termo.
func (uc *RegistrarMovimentacaoUseCase) Registrar(ctx context.Context, in dto.RegistrarMovimentacaoRequest, criadoPor string) (*dto.MovimentacaoResponse, error) {
	snapshot, err := novoCatalogo(uc.produtoRepo).Snapshot()
	if err != nil {
		return nil, err
	}

	validada, err := domestoque.Validar(domestoque.Requisicao{
		Produto:    in.Produto,
		Tipo:       in.Tipo,
		Quantidade: in.Quantidade,
		Data:       in.Data,
		Lote:       in.Lote,
		Fornecedor: in.Fornecedor,
	}, snapshot)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	mov := &entity.Movimentacao{
		ID:         uuid.New().String(),
		Produto:    validada.Produto.Nome,
		Tipo:       validada.Tipo,
		Quantidade: validada.Quantidade,
		Data:       validada.Data,
		Lote:       validada.Lote,
		Fornecedor: validada.Fornecedor,
		CriadoPor:  criadoPor,
		CreatedAt:  now,
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		produto, err := produtoRepo.BuscarPorNomeForUpdate(validada.Produto.Nome)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrProdutoNaoEncontrado
		}
		// O snapshot pode ter envelhecido entre a validação e o lock.
		if validada.Tipo == entity.TipoSaida && produto.Quantidade < validada.Quantidade {
			return domain.EstoqueInsuficiente(produto.Quantidade)
		}
		novaQuantidade, err := domestoque.AplicarMovimentacao(produto.Quantidade, validada.Tipo, validada.Quantidade)
		if err != nil {
			return err
		}
		if err := produtoRepo.AtualizarQuantidade(produto.ID, novaQuantidade); err != nil {
			return err
		}
		return movRepo.Criar(mov)
	})
	if err != nil {
		if errors.Is(err, domain.ErrEstoqueNegativo) && uc.log != nil {
			// Validador e mutador discordaram: bug, não erro do usuário.
			uc.log.Error().
				Str("produto", validada.Produto.Nome).
				Str("tipo", validada.Tipo).
				Int("quantidade", validada.Quantidade).
				Msg("invariante violada: estoque negativo")
		}
		return nil, err
	}

	if uc.notificador != nil {
		uc.notificador.CatalogoAlterado(mov)
	}
	return dto.ToMovimentacaoResponse(mov), nil
}
