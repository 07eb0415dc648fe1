package estoque

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type produtoRepoFake struct {
	produtos            []*entity.Produto
	falhaListarTodos    error
	listarTodosChamadas int
	// aoBloquear roda no início de BuscarPorNomeForUpdate; simula uma escrita
	// concorrente que comita entre o snapshot e o lock da linha.
	aoBloquear func()
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
	if f.aoBloquear != nil {
		f.aoBloquear()
	}
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

func (f *produtoRepoFake) Atualizar(produto *entity.Produto) error {
	for _, p := range f.produtos {
		if p.ID == produto.ID {
			p.Nome = produto.Nome
			p.UpdatedAt = produto.UpdatedAt
			return nil
		}
	}
	return domain.ErrNaoEncontrado
}

func (f *produtoRepoFake) Listar(limit, offset int) ([]*entity.Produto, error) {
	return f.produtos, nil
}

func (f *produtoRepoFake) ListarTodos() ([]*entity.Produto, error) {
	f.listarTodosChamadas++
	if f.falhaListarTodos != nil {
		return nil, f.falhaListarTodos
	}
	out := make([]*entity.Produto, len(f.produtos))
	copy(out, f.produtos)
	return out, nil
}

type movRepoFake struct {
	movs       []*entity.Movimentacao
	falhaCriar error
}

func (f *movRepoFake) Criar(m *entity.Movimentacao) error {
	if f.falhaCriar != nil {
		return f.falhaCriar
	}
	f.movs = append(f.movs, m)
	return nil
}

func (f *movRepoFake) BuscarPorID(id string) (*entity.Movimentacao, error) {
	for _, m := range f.movs {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *movRepoFake) Listar(limit, offset int) ([]*entity.Movimentacao, error) {
	return f.movs, nil
}

func (f *movRepoFake) ListarPorProduto(produto string, limit, offset int) ([]*entity.Movimentacao, error) {
	var out []*entity.Movimentacao
	for _, m := range f.movs {
		if m.Produto == produto {
			out = append(out, m)
		}
	}
	return out, nil
}

// txRunnerFake reproduz a semântica de transação: qualquer erro dentro de fn
// desfaz tudo que fn escreveu nos fakes.
type txRunnerFake struct {
	produtos *produtoRepoFake
	movs     *movRepoFake
}

func (tx *txRunnerFake) Run(ctx context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	antes := make(map[string]int, len(tx.produtos.produtos))
	for _, p := range tx.produtos.produtos {
		antes[p.ID] = p.Quantidade
	}
	nMovs := len(tx.movs.movs)

	if err := fn(tx.movs, tx.produtos); err != nil {
		for _, p := range tx.produtos.produtos {
			p.Quantidade = antes[p.ID]
		}
		tx.movs.movs = tx.movs.movs[:nMovs]
		return err
	}
	return nil
}

type notificadorFake struct {
	eventos []*entity.Movimentacao
}

func (n *notificadorFake) CatalogoAlterado(mov *entity.Movimentacao) {
	n.eventos = append(n.eventos, mov)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cenários
// ──────────────────────────────────────────────────────────────────────────────

type bancada struct {
	uc          *RegistrarMovimentacaoUseCase
	produtos    *produtoRepoFake
	movs        *movRepoFake
	notificador *notificadorFake
}

func novaBancada(t *testing.T) *bancada {
	t.Helper()
	produtos := &produtoRepoFake{produtos: []*entity.Produto{
		{ID: "p1", Nome: "Parafuso", Quantidade: 10},
	}}
	movs := &movRepoFake{}
	notificador := &notificadorFake{}
	uc := NewRegistrarMovimentacaoUseCase(
		&txRunnerFake{produtos: produtos, movs: movs},
		produtos,
		notificador,
		nil,
	)
	return &bancada{uc: uc, produtos: produtos, movs: movs, notificador: notificador}
}

func pedidoEntrada() dto.RegistrarMovimentacaoRequest {
	return dto.RegistrarMovimentacaoRequest{
		Produto:    "Parafuso",
		Tipo:       entity.TipoEntrada,
		Quantidade: "5",
		Data:       "2026-03-10",
		Lote:       "L1",
		Fornecedor: "ACME",
	}
}

// Entrada de 5 sobre 10: estoque vai a 15, movimentação entra no ledger e o
// aviso de catálogo alterado é emitido.
func TestRegistrar_EntradaAtualizaEstoqueEGravaLedger(t *testing.T) {
	b := novaBancada(t)

	resp, err := b.uc.Registrar(context.Background(), pedidoEntrada(), "u1")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Parafuso", resp.Produto)
	assert.Equal(t, 5, resp.Quantidade)
	assert.Equal(t, "10/03/2026", resp.Data)
	assert.Equal(t, "u1", resp.CriadoPor)

	assert.Equal(t, 15, b.produtos.produtos[0].Quantidade)
	require.Len(t, b.movs.movs, 1)
	assert.Equal(t, entity.TipoEntrada, b.movs.movs[0].Tipo)

	require.Len(t, b.notificador.eventos, 1)
	assert.Equal(t, resp.ID, b.notificador.eventos[0].ID)
}

func TestRegistrar_SaidaSubtraiEstoque(t *testing.T) {
	b := novaBancada(t)
	req := pedidoEntrada()
	req.Tipo = entity.TipoSaida
	req.Quantidade = "4"

	resp, err := b.uc.Registrar(context.Background(), req, "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.TipoSaida, resp.Tipo)
	assert.Equal(t, 6, b.produtos.produtos[0].Quantidade)
}

// Saída de 12 sobre 10: rejeita com o disponível e nada é escrito nem
// notificado.
func TestRegistrar_SaidaInsuficienteNaoEscreveNada(t *testing.T) {
	b := novaBancada(t)
	req := pedidoEntrada()
	req.Tipo = entity.TipoSaida
	req.Quantidade = "12"

	resp, err := b.uc.Registrar(context.Background(), req, "u1")
	assert.Nil(t, resp)

	var insuficiente *domain.ErrEstoqueInsuficiente
	require.ErrorAs(t, err, &insuficiente)
	assert.Equal(t, 10, insuficiente.Disponivel)

	assert.Equal(t, 10, b.produtos.produtos[0].Quantidade)
	assert.Empty(t, b.movs.movs)
	assert.Empty(t, b.notificador.eventos)
}

func TestRegistrar_ProdutoDesconhecidoNaoEscreveNada(t *testing.T) {
	b := novaBancada(t)
	req := pedidoEntrada()
	req.Produto = "Inexistente"

	_, err := b.uc.Registrar(context.Background(), req, "u1")
	assert.ErrorIs(t, err, domain.ErrProdutoNaoEncontrado)
	assert.Empty(t, b.movs.movs)
	assert.Empty(t, b.notificador.eventos)
}

func TestRegistrar_QuantidadeVaziaRejeitaAntesDePersistir(t *testing.T) {
	b := novaBancada(t)
	req := pedidoEntrada()
	req.Quantidade = ""

	_, err := b.uc.Registrar(context.Background(), req, "u1")
	assert.ErrorIs(t, err, domain.ErrCamposObrigatorios)
	assert.Empty(t, b.movs.movs)
}

// Falha ao gravar a movimentação desfaz também a atualização de quantidade:
// as duas escritas são atômicas.
func TestRegistrar_FalhaNoLedgerDesfazQuantidade(t *testing.T) {
	b := novaBancada(t)
	b.movs.falhaCriar = errors.New("banco indisponível")

	resp, err := b.uc.Registrar(context.Background(), pedidoEntrada(), "u1")
	assert.Nil(t, resp)
	assert.Error(t, err)

	assert.Equal(t, 10, b.produtos.produtos[0].Quantidade)
	assert.Empty(t, b.movs.movs)
	assert.Empty(t, b.notificador.eventos)
}

// Outra escrita comita entre o snapshot de validação e o lock da linha: a
// releitura sob lock recaptura a suficiência e rejeita com o disponível real.
func TestRegistrar_SnapshotVelhoEhRecheckadoSobLock(t *testing.T) {
	b := novaBancada(t)
	b.produtos.aoBloquear = func() {
		b.produtos.produtos[0].Quantidade = 5
	}
	req := pedidoEntrada()
	req.Tipo = entity.TipoSaida
	req.Quantidade = "8"

	_, err := b.uc.Registrar(context.Background(), req, "u1")

	var insuficiente *domain.ErrEstoqueInsuficiente
	require.ErrorAs(t, err, &insuficiente)
	assert.Equal(t, 5, insuficiente.Disponivel)
	assert.Empty(t, b.movs.movs)
}

func TestRegistrar_FalhaAoCarregarCatalogo(t *testing.T) {
	b := novaBancada(t)
	b.produtos.falhaListarTodos = errors.New("timeout")

	_, err := b.uc.Registrar(context.Background(), pedidoEntrada(), "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carregar catálogo")
}
