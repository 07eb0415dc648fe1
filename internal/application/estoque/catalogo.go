package estoque

import (
	"fmt"

	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// catalogo é um snapshot read-through do catálogo, com escopo de uma única
// chamada de Registrar: carrega todos os produtos uma vez no primeiro acesso
// e responde da cópia em memória dali em diante. É descartado ao fim da
// chamada — não existe janela de staleness entre chamadas.
type catalogo struct {
	repo      repository.ProdutoRepository
	porNome   map[string]*entity.Produto
	carregado bool
}

func novoCatalogo(repo repository.ProdutoRepository) *catalogo {
	return &catalogo{repo: repo}
}

// Snapshot devolve o mapa nome -> Produto, carregando do repositório apenas
// na primeira chamada.
func (c *catalogo) Snapshot() (map[string]*entity.Produto, error) {
	if c.carregado {
		return c.porNome, nil
	}
	produtos, err := c.repo.ListarTodos()
	if err != nil {
		return nil, fmt.Errorf("carregar catálogo: %w", err)
	}
	c.porNome = make(map[string]*entity.Produto, len(produtos))
	for _, p := range produtos {
		c.porNome[p.Nome] = p
	}
	c.carregado = true
	return c.porNome, nil
}
