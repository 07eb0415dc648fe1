package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
	"github.com/seu-usuario/estoque-api/pkg/validator"
)

// ProdutoUseCase gerencia o catálogo de produtos. A unicidade de nome é
// garantida aqui na criação (além do índice único no banco): nome é a chave
// de referência das movimentações, então dois produtos não podem compartilhar
// o mesmo nome.
type ProdutoUseCase struct {
	produtoRepo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso de catálogo.
func NewProdutoUseCase(produtoRepo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{produtoRepo: produtoRepo}
}

// Criar cadastra um produto com a quantidade inicial. Depois da criação, só o
// motor de movimentações escreve em quantidade.
func (uc *ProdutoUseCase) Criar(in dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, domain.ErrCamposObrigatorios
	}
	existente, err := uc.produtoRepo.BuscarPorNome(in.Nome)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrNomeJaExiste
	}
	now := time.Now()
	produto := &entity.Produto{
		ID:         uuid.New().String(),
		Nome:       in.Nome,
		Quantidade: in.Quantidade,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.produtoRepo.Criar(produto); err != nil {
		return nil, err
	}
	return dto.ToProdutoResponse(produto), nil
}

// Atualizar renomeia um produto. Não toca em quantidade.
func (uc *ProdutoUseCase) Atualizar(id string, in dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return nil, domain.ErrCamposObrigatorios
	}
	produto, err := uc.produtoRepo.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != produto.Nome {
		existente, err := uc.produtoRepo.BuscarPorNome(in.Nome)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domain.ErrNomeJaExiste
		}
	}
	produto.Nome = in.Nome
	produto.UpdatedAt = time.Now()
	if err := uc.produtoRepo.Atualizar(produto); err != nil {
		return nil, err
	}
	return dto.ToProdutoResponse(produto), nil
}
