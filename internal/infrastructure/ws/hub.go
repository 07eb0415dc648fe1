// Package ws implementa o canal de notificação de catálogo por WebSocket:
// um hub de conexões que recebe broadcasts e os replica para cada cliente.
package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/application/estoque"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/pkg/logger"
)

// Hub mantém o conjunto de conexões WebSocket ativas e replica mensagens de
// Broadcast para todas elas.
type Hub struct {
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte

	clients map[*websocket.Conn]bool
	mutex   sync.Mutex
	log     *logger.Logger
}

// NewHub constrói o hub. Chamar Run em uma goroutine antes de usar.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, 16),
		clients:    make(map[*websocket.Conn]bool),
		log:        log,
	}
}

// Run processa registros, desconexões e broadcasts até o processo encerrar.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.clients[conn] = true
			h.mutex.Unlock()
			if h.log != nil {
				h.log.Debug().Msg("cliente WebSocket conectado")
			}

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Ensure Notificador implements estoque.Notificador.
var _ estoque.Notificador = (*Notificador)(nil)

// Notificador adapta o hub ao porto estoque.Notificador: um evento
// "catalogo_alterado" por commit bem-sucedido, fire-and-forget.
type Notificador struct {
	hub *Hub
	log *logger.Logger
}

// NewNotificador constrói o adaptador sobre o hub.
func NewNotificador(hub *Hub, log *logger.Logger) *Notificador {
	return &Notificador{hub: hub, log: log}
}

// CatalogoAlterado publica o evento para todos os clientes conectados.
// Roda em goroutine própria: o commit já aconteceu e não espera por ouvintes.
func (n *Notificador) CatalogoAlterado(mov *entity.Movimentacao) {
	go func() {
		payload := map[string]any{
			"type":         "catalogo_alterado",
			"movimentacao": dto.ToMovimentacaoResponse(mov),
		}
		msg, err := json.Marshal(payload)
		if err != nil {
			if n.log != nil {
				n.log.Error().Err(err).Msg("serializar evento de catálogo")
			}
			return
		}
		n.hub.Broadcast <- msg
	}()
}
