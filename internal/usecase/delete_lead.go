package usecase

import (
	"context"
	"errors"

	"leadpro/internal/entity"
	"leadpro/internal/webhook"
)

type DeleteLeadUseCase struct {
	Leads  entity.LeadRepositoryInterface
	Events EventPublisherInterface
}

func NewDeleteLeadUseCase(leads entity.LeadRepositoryInterface, events EventPublisherInterface) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{Leads: leads, Events: events}
}

// Execute captura a projeção do lead antes de excluir: o evento LEAD_DELETADO
// sai com o estado imediatamente anterior à exclusão.
func (uc *DeleteLeadUseCase) Execute(ctx context.Context, id int) error {
	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return notFound("lead não encontrado")
		}
		return err
	}

	if err := uc.Leads.Delete(ctx, id); err != nil {
		return transactionFailed("erro ao excluir lead: " + err.Error())
	}

	publishEvent(ctx, uc.Events, webhook.LeadDeleted(lead))
	return nil
}
