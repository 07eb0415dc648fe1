package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/estoque-api/internal/application/auth"
	"github.com/seu-usuario/estoque-api/internal/application/estoque"
	"github.com/seu-usuario/estoque-api/internal/application/usecase"
	"github.com/seu-usuario/estoque-api/internal/infrastructure/ws"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	RegistrarMovimentacao *estoque.RegistrarMovimentacaoUseCase
	Consulta              *estoque.ConsultaUseCase
	ProdutoUC             *usecase.ProdutoUseCase
	AuthUC                *auth.AuthUseCase
	Hub                   *ws.Hub
	JWTSecret             string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo de produtos
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC, deps.Consulta)
	produtos.Post("/", produtoHandler.Criar)
	produtos.Get("/", produtoHandler.Listar)
	produtos.Get("/:id", produtoHandler.BuscarPorID)
	produtos.Put("/:id", produtoHandler.Atualizar)

	// Ledger de movimentações
	movimentacoes := protected.Group("/movimentacoes")
	movimentacaoHandler := NewMovimentacaoHandler(deps.RegistrarMovimentacao, deps.Consulta)
	movimentacoes.Post("/", movimentacaoHandler.Registrar)
	movimentacoes.Get("/", movimentacaoHandler.Listar)

	// Canal de notificação: um evento catalogo_alterado por commit
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		deps.Hub.Register <- conn
		defer func() { deps.Hub.Unregister <- conn }()

		for {
			// Só mantém a conexão viva; o tráfego é todo de saída.
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}))
}
