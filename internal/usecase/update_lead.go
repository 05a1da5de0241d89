package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"leadpro/internal/entity"
	"leadpro/internal/webhook"
)

type UpdateLeadUseCase struct {
	Leads  entity.LeadRepositoryInterface
	Events EventPublisherInterface
}

func NewUpdateLeadUseCase(leads entity.LeadRepositoryInterface, events EventPublisherInterface) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Leads: leads, Events: events}
}

// Execute aplica uma atualização parcial. Produtos são substituídos por
// inteiro quando presentes no corpo, e o total é recalculado sempre que
// produtos ou desconto geral chegam. Timestamp e usuário de atualização são
// renovados em toda mutação.
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, id int, input UpdateLeadInput) (*entity.Lead, error) {
	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, notFound("lead não encontrado")
		}
		return nil, err
	}

	oldStatus := lead.Status
	oldTotal := lead.TotalValue

	if errs := uc.apply(lead, input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	replaceProducts := input.Products != nil
	if replaceProducts {
		if name, dup := duplicatedProduct(*input.Products); dup {
			return nil, conflict(fmt.Sprintf("produto %q já está no lead", name))
		}
		lead.Products = buildProducts(*input.Products)
	}
	if replaceProducts || input.GeneralDiscount != nil {
		lead.TotalValue = CalculateLeadTotal(lead.Products, lead.GeneralDiscount)
	}

	lead.UpdatedAt = time.Now()
	lead.UpdatedBy = orSistema(input.UpdatedBy)

	if err := uc.Leads.UpdateWithProducts(ctx, lead, replaceProducts); err != nil {
		return nil, transactionFailed("erro ao atualizar lead: " + err.Error())
	}

	publishEvent(ctx, uc.Events, webhook.LeadUpdated(lead))
	if lead.Status != oldStatus {
		publishEvent(ctx, uc.Events, webhook.StatusChanged(lead, oldStatus, lead.Status))
	}
	if lead.TotalValue != oldTotal {
		publishEvent(ctx, uc.Events, webhook.ProposalValueChanged(lead, oldTotal, lead.TotalValue))
	}

	return lead, nil
}

func (uc *UpdateLeadUseCase) apply(lead *entity.Lead, input UpdateLeadInput) []ValidationError {
	var errs []ValidationError

	if input.Name != nil {
		if *input.Name == "" {
			errs = append(errs, ValidationError{"nome", "não pode ficar vazio"})
		} else {
			lead.Name = *input.Name
		}
	}
	if input.Email != nil {
		if _, err := mail.ParseAddress(*input.Email); err != nil {
			errs = append(errs, ValidationError{"email", "é inválido"})
		} else {
			lead.Email = *input.Email
		}
	}
	if input.Phone != nil {
		lead.Phone = *input.Phone
	}
	if input.Company != nil {
		lead.Company = *input.Company
	}
	if input.Role != nil {
		lead.Role = *input.Role
	}
	if input.Source != nil {
		source := entity.LeadSource(*input.Source)
		if !source.IsValid() {
			errs = append(errs, ValidationError{"fonte", "é inválida"})
		} else {
			lead.Source = source
		}
	}
	if input.Status != nil {
		status := entity.LeadStatus(*input.Status)
		if !status.IsValid() {
			errs = append(errs, ValidationError{"status", "é inválido"})
		} else {
			lead.Status = status
		}
	}
	if input.ContractValue != nil {
		lead.ContractValue = *input.ContractValue
	}
	if input.Notes != nil {
		lead.Notes = *input.Notes
	}
	if input.GeneralDiscount != nil {
		if *input.GeneralDiscount < 0 {
			errs = append(errs, ValidationError{"descontoGeral", "não pode ser negativo"})
		} else {
			lead.GeneralDiscount = *input.GeneralDiscount
		}
	}
	if input.Products != nil {
		errs = append(errs, validateProducts(*input.Products)...)
	}

	return errs
}
