package usecase

import (
	"context"
	"fmt"
	"time"

	"leadpro/internal/entity"
	"leadpro/internal/webhook"
)

type CreateLeadUseCase struct {
	Leads  entity.LeadRepositoryInterface
	Events EventPublisherInterface
}

func NewCreateLeadUseCase(leads entity.LeadRepositoryInterface, events EventPublisherInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{Leads: leads, Events: events}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, validationFailed(errs)
	}
	if name, dup := duplicatedProduct(input.Products); dup {
		return nil, conflict(fmt.Sprintf("produto %q já está no lead", name))
	}

	now := time.Now()
	lead := &entity.Lead{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Company:         input.Company,
		Role:            input.Role,
		Source:          entity.LeadSource(input.Source),
		Status:          entity.StatusNovoLead,
		ContractValue:   input.ContractValue,
		Notes:           input.Notes,
		Products:        buildProducts(input.Products),
		GeneralDiscount: input.GeneralDiscount,
		CreatedAt:       now,
		UpdatedAt:       now,
		CreatedBy:       orSistema(input.CreatedBy),
	}
	lead.TotalValue = CalculateLeadTotal(lead.Products, lead.GeneralDiscount)

	// Lead e produtos entram na mesma transação: rollback total em caso de
	// falha, e nenhum evento é publicado para uma escrita revertida.
	if err := uc.Leads.CreateWithProducts(ctx, lead); err != nil {
		return nil, transactionFailed("erro ao gravar lead: " + err.Error())
	}

	publishEvent(ctx, uc.Events, webhook.LeadCreated(lead))
	return lead, nil
}

func buildProducts(inputs []LeadProductInput) []entity.LeadProduct {
	if len(inputs) == 0 {
		return nil
	}
	products := make([]entity.LeadProduct, 0, len(inputs))
	for _, p := range inputs {
		products = append(products, entity.LeadProduct{
			Name:       entity.ProductName(p.Name),
			Value:      p.Value,
			Discount:   p.Discount,
			FinalValue: p.Value - p.Discount,
		})
	}
	return products
}

func orSistema(user string) string {
	if user == "" {
		return "Sistema"
	}
	return user
}
