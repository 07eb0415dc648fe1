// seed popula o catálogo com produtos de demonstração. Idempotente: produtos
// cujo nome já existe são pulados.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/infrastructure/postgres"
	"github.com/seu-usuario/estoque-api/pkg/config"
	"github.com/seu-usuario/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	repo := postgres.NewProdutoRepository(pool)

	demo := []struct {
		nome       string
		quantidade int
	}{
		{"Parafuso", 10},
		{"Porca M6", 250},
		{"Arruela lisa", 500},
		{"Cabo flexível 2,5mm", 40},
	}

	for _, d := range demo {
		existente, err := repo.BuscarPorNome(d.nome)
		if err != nil {
			log.Fatal().Err(err).Str("produto", d.nome).Msg("consultar produto")
		}
		if existente != nil {
			log.Info().Str("produto", d.nome).Msg("já existe, pulando")
			continue
		}
		now := time.Now()
		err = repo.Criar(&entity.Produto{
			ID:         uuid.New().String(),
			Nome:       d.nome,
			Quantidade: d.quantidade,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			log.Fatal().Err(err).Str("produto", d.nome).Msg("criar produto")
		}
		log.Info().Str("produto", d.nome).Int("quantidade", d.quantidade).Msg("produto criado")
	}
}
