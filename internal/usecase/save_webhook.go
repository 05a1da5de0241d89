package usecase

import (
	"context"
	"errors"
	"time"

	"leadpro/internal/entity"
	"leadpro/internal/webhook"
)

type SaveWebhookUseCase struct {
	Webhooks entity.WebhookRepositoryInterface
}

func NewSaveWebhookUseCase(webhooks entity.WebhookRepositoryInterface) *SaveWebhookUseCase {
	return &SaveWebhookUseCase{Webhooks: webhooks}
}

// Create aplica os defaults de um webhook novo: sem eventos informados, só
// LEAD_CRIADO entra; sem configuração informada, cada evento ganha uma
// EventConfig com os campos obrigatórios habilitados.
func (uc *SaveWebhookUseCase) Create(ctx context.Context, input SaveWebhookInput) (*entity.Webhook, error) {
	if errs := ValidateWebhookInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	now := time.Now()
	wh := &entity.Webhook{
		Name:      input.Name,
		URL:       input.URL,
		Active:    input.Active,
		Events:    toEvents(input.Events),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if len(wh.Events) == 0 {
		wh.Events = []entity.WebhookEvent{entity.EventLeadCriado}
	}
	if len(input.EventConfigs) == 0 {
		wh.EventConfigs = webhook.DefaultEventConfigs()
	} else {
		wh.EventConfigs = normalizeConfigs(input.EventConfigs)
	}

	if err := uc.Webhooks.Create(ctx, wh); err != nil {
		return nil, err
	}
	return wh, nil
}

// Update é replace do objeto completo, sem merge parcial.
func (uc *SaveWebhookUseCase) Update(ctx context.Context, id int, input SaveWebhookInput) (*entity.Webhook, error) {
	if errs := ValidateWebhookInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	current, err := uc.Webhooks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrWebhookNotFound) {
			return nil, notFound("webhook não encontrado")
		}
		return nil, err
	}

	wh := &entity.Webhook{
		ID:           id,
		Name:         input.Name,
		URL:          input.URL,
		Active:       input.Active,
		Events:       toEvents(input.Events),
		EventConfigs: normalizeConfigs(input.EventConfigs),
		CreatedAt:    current.CreatedAt,
		UpdatedAt:    time.Now(),
	}

	if err := uc.Webhooks.Update(ctx, wh); err != nil {
		return nil, err
	}
	return wh, nil
}

func toEvents(names []string) []entity.WebhookEvent {
	if len(names) == 0 {
		return nil
	}
	events := make([]entity.WebhookEvent, 0, len(names))
	for _, n := range names {
		events = append(events, entity.WebhookEvent(n))
	}
	return events
}

// normalizeConfigs reimpõe a obrigatoriedade de cada campo: o flag obrigatorio
// vem da tabela de campos, não do corpo da requisição.
func normalizeConfigs(configs []entity.EventConfig) []entity.EventConfig {
	out := make([]entity.EventConfig, len(configs))
	for i, config := range configs {
		out[i] = config
		out[i].Fields = make([]entity.DataField, len(config.Fields))
		for j, field := range config.Fields {
			field.Mandatory = webhook.MandatoryLeadField(field.Field)
			out[i].Fields[j] = field
		}
	}
	return out
}
