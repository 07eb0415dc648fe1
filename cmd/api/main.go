package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/seu-usuario/estoque-api/internal/application/auth"
	"github.com/seu-usuario/estoque-api/internal/application/estoque"
	"github.com/seu-usuario/estoque-api/internal/application/usecase"
	"github.com/seu-usuario/estoque-api/internal/infrastructure/postgres"
	"github.com/seu-usuario/estoque-api/internal/infrastructure/rabbitmq"
	"github.com/seu-usuario/estoque-api/internal/infrastructure/ws"
	httpRouter "github.com/seu-usuario/estoque-api/internal/interfaces/http"
	"github.com/seu-usuario/estoque-api/pkg/config"
	"github.com/seu-usuario/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	produtoRepo := postgres.NewProdutoRepository(pool)
	movRepo := postgres.NewMovimentacaoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	hub := ws.NewHub(log)
	go hub.Run()

	notificadores := estoque.Notificadores{ws.NewNotificador(hub, log)}
	if cfg.Broker.URL != "" {
		conn, ch, err := rabbitmq.SetupConn(cfg.Broker.URL, cfg.Broker.Exchange)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão ao RabbitMQ")
		}
		defer conn.Close()
		notificadores = append(notificadores, rabbitmq.NewPublisher(ch, cfg.Broker.Exchange, log))
		log.Info().Str("exchange", cfg.Broker.Exchange).Msg("publisher de catálogo habilitado")
	}

	registrarUC := estoque.NewRegistrarMovimentacaoUseCase(txRunner, produtoRepo, notificadores, log)
	consultaUC := estoque.NewConsultaUseCase(movRepo, produtoRepo)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RegistrarMovimentacao: registrarUC,
		Consulta:              consultaUC,
		ProdutoUC:             produtoUC,
		AuthUC:                authUC,
		Hub:                   hub,
		JWTSecret:             cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
