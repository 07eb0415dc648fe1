package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
)

type produtoRepoFake struct {
	produtos []*entity.Produto
}

func (f *produtoRepoFake) Criar(p *entity.Produto) error {
	f.produtos = append(f.produtos, p)
	return nil
}

func (f *produtoRepoFake) BuscarPorID(id string) (*entity.Produto, error) {
	for _, p := range f.produtos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *produtoRepoFake) BuscarPorNome(nome string) (*entity.Produto, error) {
	for _, p := range f.produtos {
		if p.Nome == nome {
			return p, nil
		}
	}
	return nil, nil
}

func (f *produtoRepoFake) BuscarPorNomeForUpdate(nome string) (*entity.Produto, error) {
	return f.BuscarPorNome(nome)
}

func (f *produtoRepoFake) AtualizarQuantidade(id string, quantidade int) error {
	for _, p := range f.produtos {
		if p.ID == id {
			p.Quantidade = quantidade
			return nil
		}
	}
	return domain.ErrNaoEncontrado
}

func (f *produtoRepoFake) Atualizar(produto *entity.Produto) error { return nil }

func (f *produtoRepoFake) Listar(limit, offset int) ([]*entity.Produto, error) {
	return f.produtos, nil
}

func (f *produtoRepoFake) ListarTodos() ([]*entity.Produto, error) { return f.produtos, nil }

func TestProdutoCriar_ComQuantidadeInicial(t *testing.T) {
	repo := &produtoRepoFake{}
	uc := NewProdutoUseCase(repo)

	resp, err := uc.Criar(dto.CriarProdutoRequest{Nome: "Parafuso", Quantidade: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Parafuso", resp.Nome)
	assert.Equal(t, 10, resp.Quantidade)
	assert.Len(t, repo.produtos, 1)
}

func TestProdutoCriar_SemNome(t *testing.T) {
	uc := NewProdutoUseCase(&produtoRepoFake{})
	_, err := uc.Criar(dto.CriarProdutoRequest{Quantidade: 10})
	assert.ErrorIs(t, err, domain.ErrCamposObrigatorios)
}

// Nome é a chave de referência do ledger: dois produtos não podem compartilhar
// o mesmo nome.
func TestProdutoCriar_NomeDuplicado(t *testing.T) {
	repo := &produtoRepoFake{produtos: []*entity.Produto{
		{ID: "p1", Nome: "Parafuso", Quantidade: 10},
	}}
	uc := NewProdutoUseCase(repo)

	_, err := uc.Criar(dto.CriarProdutoRequest{Nome: "Parafuso"})
	assert.ErrorIs(t, err, domain.ErrNomeJaExiste)
	assert.Len(t, repo.produtos, 1)
}

func TestProdutoAtualizar_RenomeiaSemTocarQuantidade(t *testing.T) {
	repo := &produtoRepoFake{produtos: []*entity.Produto{
		{ID: "p1", Nome: "Parafuso", Quantidade: 10},
	}}
	uc := NewProdutoUseCase(repo)

	resp, err := uc.Atualizar("p1", dto.AtualizarProdutoRequest{Nome: "Parafuso M4"})
	require.NoError(t, err)
	assert.Equal(t, "Parafuso M4", resp.Nome)
	assert.Equal(t, 10, resp.Quantidade)
}

func TestProdutoAtualizar_NaoEncontrado(t *testing.T) {
	uc := NewProdutoUseCase(&produtoRepoFake{})
	_, err := uc.Atualizar("inexistente", dto.AtualizarProdutoRequest{Nome: "X"})
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestProdutoAtualizar_NomeJaUsadoPorOutro(t *testing.T) {
	repo := &produtoRepoFake{produtos: []*entity.Produto{
		{ID: "p1", Nome: "Parafuso", Quantidade: 10},
		{ID: "p2", Nome: "Porca M6", Quantidade: 3},
	}}
	uc := NewProdutoUseCase(repo)

	_, err := uc.Atualizar("p2", dto.AtualizarProdutoRequest{Nome: "Parafuso"})
	assert.ErrorIs(t, err, domain.ErrNomeJaExiste)
}
