package estoque

import (
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// ConsultaUseCase responde as leituras do ledger e do catálogo.
type ConsultaUseCase struct {
	movRepo     repository.MovimentacaoRepository
	produtoRepo repository.ProdutoRepository
}

// NewConsultaUseCase constrói o caso de uso de consulta.
func NewConsultaUseCase(movRepo repository.MovimentacaoRepository, produtoRepo repository.ProdutoRepository) *ConsultaUseCase {
	return &ConsultaUseCase{movRepo: movRepo, produtoRepo: produtoRepo}
}

// ListarMovimentacoes devolve o ledger em ordem de inserção. Leituras são
// idempotentes: sem um Registrar no meio, duas chamadas devolvem o mesmo
// resultado. Inverter para mais-recentes-primeiro é papel da apresentação.
func (uc *ConsultaUseCase) ListarMovimentacoes(produto string, page dto.PageRequest) ([]*dto.MovimentacaoResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.Movimentacao
		err  error
	)
	if produto != "" {
		list, err = uc.movRepo.ListarPorProduto(produto, page.Limit, page.Offset)
	} else {
		list, err = uc.movRepo.Listar(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovimentacaoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.ToMovimentacaoResponse(m))
	}
	return out, nil
}

// ListarProdutos devolve o catálogo paginado.
func (uc *ConsultaUseCase) ListarProdutos(page dto.PageRequest) ([]*dto.ProdutoResponse, error) {
	page.DefaultPage()
	list, err := uc.produtoRepo.Listar(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ToProdutoResponse(p))
	}
	return out, nil
}

// BuscarProduto devolve um produto por ID ou nil se não existir.
func (uc *ConsultaUseCase) BuscarProduto(id string) (*dto.ProdutoResponse, error) {
	p, err := uc.produtoRepo.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	return dto.ToProdutoResponse(p), nil
}
