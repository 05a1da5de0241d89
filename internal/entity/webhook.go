package entity

import (
	"context"
	"time"
)

type WebhookEvent string

const (
	EventLeadCriado            WebhookEvent = "LEAD_CRIADO"
	EventLeadAtualizado        WebhookEvent = "LEAD_ATUALIZADO"
	EventLeadDeletado          WebhookEvent = "LEAD_DELETADO"
	EventInteracaoCriada       WebhookEvent = "INTERACAO_CRIADA"
	EventStatusAlterado        WebhookEvent = "STATUS_ALTERADO"
	EventValorPropostaAlterado WebhookEvent = "VALOR_PROPOSTA_ALTERADO"
)

// AllWebhookEvents na ordem em que aparecem na tela de configuração.
var AllWebhookEvents = []WebhookEvent{
	EventLeadCriado,
	EventLeadAtualizado,
	EventLeadDeletado,
	EventInteracaoCriada,
	EventStatusAlterado,
	EventValorPropostaAlterado,
}

func (e WebhookEvent) IsValid() bool {
	for _, known := range AllWebhookEvents {
		if e == known {
			return true
		}
	}
	return false
}

// DataField descreve um campo exportável do lead na configuração do webhook.
// Campos obrigatórios são exportados sempre, mesmo com Active == false.
type DataField struct {
	Field     string `json:"campo"`
	Label     string `json:"label"`
	Active    bool   `json:"ativo"`
	Mandatory bool   `json:"obrigatorio"`
}

type EventConfig struct {
	Event  WebhookEvent `json:"evento"`
	Active bool         `json:"ativo"`
	Fields []DataField  `json:"dadosEnviados"`
}

type Webhook struct {
	ID           int           `json:"id"`
	Name         string        `json:"nome"`
	URL          string        `json:"url"`
	Active       bool          `json:"ativo"`
	Events       []WebhookEvent `json:"eventos"`
	EventConfigs []EventConfig `json:"configuracaoEventos"`
	CreatedAt    time.Time     `json:"dataCriacao"`
	UpdatedAt    time.Time     `json:"dataAtualizacao"`
}

// SubscribedTo informa se o webhook assina o evento.
func (w *Webhook) SubscribedTo(event WebhookEvent) bool {
	for _, e := range w.Events {
		if e == event {
			return true
		}
	}
	return false
}

// ConfigFor devolve a configuração do evento, ou nil quando não existe.
// Ausência de configuração significa "exportar só o envelope", nunca "exportar tudo".
func (w *Webhook) ConfigFor(event WebhookEvent) *EventConfig {
	for i := range w.EventConfigs {
		if w.EventConfigs[i].Event == event {
			return &w.EventConfigs[i]
		}
	}
	return nil
}

type WebhookRepositoryInterface interface {
	FindAll(ctx context.Context) ([]Webhook, error)
	FindByID(ctx context.Context, id int) (*Webhook, error)
	Create(ctx context.Context, webhook *Webhook) error
	Update(ctx context.Context, webhook *Webhook) error
	Delete(ctx context.Context, id int) error
}
