package usecase

import (
	"context"
	"errors"
	"time"

	"leadpro/internal/entity"
	"leadpro/internal/webhook"
)

type CreateInteractionUseCase struct {
	Interactions entity.InteractionRepositoryInterface
	Leads        entity.LeadRepositoryInterface
	Events       EventPublisherInterface
}

func NewCreateInteractionUseCase(
	interactions entity.InteractionRepositoryInterface,
	leads entity.LeadRepositoryInterface,
	events EventPublisherInterface,
) *CreateInteractionUseCase {
	return &CreateInteractionUseCase{
		Interactions: interactions,
		Leads:        leads,
		Events:       events,
	}
}

func (uc *CreateInteractionUseCase) Execute(ctx context.Context, input CreateInteractionInput) (*entity.Interaction, error) {
	if errs := ValidateCreateInteractionInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	lead, err := uc.Leads.FindByID(ctx, input.LeadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, notFound("lead não encontrado")
		}
		return nil, err
	}

	interaction := &entity.Interaction{
		LeadID:        input.LeadID,
		Type:          entity.InteractionType(input.Type),
		Content:       input.Content,
		MediaID:       input.MediaID,
		MediaType:     input.MediaType,
		MediaFilename: input.MediaFilename,
		CreatedAt:     time.Now(),
		CreatedBy:     orSistema(input.CreatedBy),
	}

	if err := uc.Interactions.Create(ctx, interaction); err != nil {
		return nil, transactionFailed("erro ao gravar interação: " + err.Error())
	}

	publishEvent(ctx, uc.Events, webhook.InteractionCreated(interaction, lead))
	return interaction, nil
}
