// Package rabbitmq publica eventos de catálogo em um topic exchange, para
// consumidores externos (dashboards, integrações). Opcional: só é ligado
// quando BROKER_URL está configurada.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/application/estoque"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/pkg/logger"
)

const exchangeType = "topic"

// SetupConn abre a conexão e declara o exchange. Faz algumas tentativas para
// cobrir a subida dos containers.
func SetupConn(url, exchange string) (*amqp.Connection, *amqp.Channel, error) {
	var conn *amqp.Connection
	var err error
	for i := 0; i < 5; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("conectar ao RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, fmt.Errorf("abrir canal: %w", err)
	}

	if err := ch.ExchangeDeclare(
		exchange,     // name
		exchangeType, // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	); err != nil {
		return nil, nil, fmt.Errorf("declarar exchange: %w", err)
	}

	return conn, ch, nil
}

// Ensure Publisher implements estoque.Notificador.
var _ estoque.Notificador = (*Publisher)(nil)

// Publisher implementa estoque.Notificador sobre um canal AMQP.
type Publisher struct {
	ch       *amqp.Channel
	exchange string
	log      *logger.Logger
}

// NewPublisher constrói o publisher sobre o canal e exchange já declarados.
func NewPublisher(ch *amqp.Channel, exchange string, log *logger.Logger) *Publisher {
	return &Publisher{ch: ch, exchange: exchange, log: log}
}

// CatalogoAlterado publica o evento com routing key
// catalogo.movimentacao.<tipo>. Fire-and-forget: erro só vai para o log.
func (p *Publisher) CatalogoAlterado(mov *entity.Movimentacao) {
	go func() {
		body, err := json.Marshal(dto.ToMovimentacaoResponse(mov))
		if err != nil {
			if p.log != nil {
				p.log.Error().Err(err).Msg("serializar movimentação para o broker")
			}
			return
		}
		routingKey := fmt.Sprintf("catalogo.movimentacao.%s", mov.Tipo)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = p.ch.PublishWithContext(ctx,
			p.exchange, // exchange
			routingKey, // routing key
			false,      // mandatory
			false,      // immediate
			amqp.Publishing{
				ContentType: "application/json",
				Body:        body,
			},
		)
		if err != nil && p.log != nil {
			p.log.Error().Err(err).Str("routing_key", routingKey).Msg("publicar evento de catálogo")
		}
	}()
}
