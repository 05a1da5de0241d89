package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"leadpro/internal/webhook"
)

// EventDispatcher é o contrato que o worker exige de quem faz o fan-out.
type EventDispatcher interface {
	Dispatch(ctx context.Context, payload webhook.Payload)
}

type Worker struct {
	Channel    *amqp.Channel
	Dispatcher EventDispatcher
}

func NewWorker(ch *amqp.Channel, dispatcher EventDispatcher) *Worker {
	return &Worker{
		Channel:    ch,
		Dispatcher: dispatcher,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload webhook.Payload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido na fila de eventos: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Evento %s recebido, iniciando fan-out", payload.Event)

			// Entrega é best-effort: o dispatcher já loga falha por alvo,
			// então a mensagem é confirmada independente do resultado.
			w.Dispatcher.Dispatch(context.Background(), payload)
			d.Ack(false)
		}
	}()

	log.Printf(" [*] Worker de webhooks aguardando na fila '%s'", queueName)
	<-forever
}
