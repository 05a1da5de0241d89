package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"leadpro/internal/webhook"
)

var eventsPublished = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "domain_events_published_total",
		Help: "Total number of domain events published to the queue",
	},
	[]string{"event"},
)

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

// PublishEvent coloca o payload canônico na fila de dispatch. A requisição que
// originou o evento já respondeu ao seu chamador; daqui pra frente é
// responsabilidade do worker.
func (p *RabbitMQProducer) PublishEvent(ctx context.Context, payload webhook.Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	eventsPublished.WithLabelValues(string(payload.Event)).Inc()
	return nil
}
