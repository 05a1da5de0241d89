package usecase

import (
	"context"
	"log"

	"leadpro/internal/webhook"
)

// EventPublisherInterface desacopla a mutação de domínio do dispatch: o use
// case publica o payload canônico e segue em frente. Falha de publicação é
// logada, nunca devolvida ao chamador — a mutação já foi confirmada.
type EventPublisherInterface interface {
	PublishEvent(ctx context.Context, payload webhook.Payload) error
}

func publishEvent(ctx context.Context, events EventPublisherInterface, payload webhook.Payload) {
	if events == nil {
		return
	}
	if err := events.PublishEvent(ctx, payload); err != nil {
		log.Printf("⚠️ Erro ao publicar evento %s: %v", payload.Event, err)
	}
}
