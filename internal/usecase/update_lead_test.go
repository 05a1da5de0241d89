package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"leadpro/internal/entity"
)

func storedLead() *entity.Lead {
	return &entity.Lead{
		ID:     42,
		Name:   "Maria Souza",
		Email:  "maria@empresa.com.br",
		Source: entity.SourceIndicacao,
		Status: entity.StatusNovoLead,
		Products: []entity.LeadProduct{
			{Name: entity.ProductEasyMaps, Value: 100, Discount: 20, FinalValue: 80},
		},
		TotalValue: 80,
		CreatedBy:  "admin",
	}
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestUpdateLead_NaoEncontrado(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewUpdateLeadUseCase(repo, &FakeEventPublisher{})

	repo.On("FindByID", mock.Anything, 99).Return(nil, entity.ErrLeadNotFound)

	_, err := uc.Execute(context.Background(), 99, UpdateLeadInput{})

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeNotFound, domainErr.Code)
}

func TestUpdateLead_SoLeadAtualizadoQuandoNadaMuda(t *testing.T) {
	repo := new(MockLeadRepository)
	events := &FakeEventPublisher{}
	uc := NewUpdateLeadUseCase(repo, events)

	repo.On("FindByID", mock.Anything, 42).Return(storedLead(), nil)
	repo.On("UpdateWithProducts", mock.Anything, mock.Anything, false).Return(nil)

	_, err := uc.Execute(context.Background(), 42, UpdateLeadInput{
		Phone:     strPtr("11988887777"),
		UpdatedBy: "vendedor",
	})

	assert.NoError(t, err)
	assert.Equal(t, []entity.WebhookEvent{entity.EventLeadAtualizado}, events.EventNames())
}

func TestUpdateLead_MudancaDeStatusPublicaEventoDedicado(t *testing.T) {
	repo := new(MockLeadRepository)
	events := &FakeEventPublisher{}
	uc := NewUpdateLeadUseCase(repo, events)

	repo.On("FindByID", mock.Anything, 42).Return(storedLead(), nil)
	repo.On("UpdateWithProducts", mock.Anything, mock.Anything, false).Return(nil)

	_, err := uc.Execute(context.Background(), 42, UpdateLeadInput{
		Status: strPtr("PROPOSTA_ENVIADA"),
	})

	assert.NoError(t, err)
	assert.Equal(t, []entity.WebhookEvent{
		entity.EventLeadAtualizado,
		entity.EventStatusAlterado,
	}, events.EventNames())

	// A seção mudanca carrega o antes/depois
	change := events.Published[1].Change
	assert.Equal(t, "status", change.Field)
	assert.Equal(t, "NOVO_LEAD", change.Previous)
	assert.Equal(t, "PROPOSTA_ENVIADA", change.New)
}

func TestUpdateLead_MudancaDeTotalPublicaValorProposta(t *testing.T) {
	repo := new(MockLeadRepository)
	events := &FakeEventPublisher{}
	uc := NewUpdateLeadUseCase(repo, events)

	repo.On("FindByID", mock.Anything, 42).Return(storedLead(), nil)
	repo.On("UpdateWithProducts", mock.Anything, mock.Anything, true).Return(nil)

	newProducts := []LeadProductInput{
		{Name: "EasyMaps", Value: 100, Discount: 20},
		{Name: "EasyBI", Value: 200, Discount: 0},
	}
	lead, err := uc.Execute(context.Background(), 42, UpdateLeadInput{
		Products: &newProducts,
	})

	assert.NoError(t, err)
	assert.Equal(t, 280.0, lead.TotalValue)
	assert.Equal(t, []entity.WebhookEvent{
		entity.EventLeadAtualizado,
		entity.EventValorPropostaAlterado,
	}, events.EventNames())

	change := events.Published[1].Change
	assert.Equal(t, "valorTotal", change.Field)
	assert.Equal(t, 80.0, change.Previous)
	assert.Equal(t, 280.0, change.New)
}

func TestUpdateLead_DescontoGeralRecalculaTotal(t *testing.T) {
	repo := new(MockLeadRepository)
	events := &FakeEventPublisher{}
	uc := NewUpdateLeadUseCase(repo, events)

	repo.On("FindByID", mock.Anything, 42).Return(storedLead(), nil)
	repo.On("UpdateWithProducts", mock.Anything, mock.Anything, false).Return(nil)

	lead, err := uc.Execute(context.Background(), 42, UpdateLeadInput{
		GeneralDiscount: floatPtr(30),
	})

	assert.NoError(t, err)
	assert.Equal(t, 50.0, lead.TotalValue)
	assert.Contains(t, events.EventNames(), entity.EventValorPropostaAlterado)
}

func TestUpdateLead_StatusInvalidoFalhaValidacao(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewUpdateLeadUseCase(repo, &FakeEventPublisher{})

	repo.On("FindByID", mock.Anything, 42).Return(storedLead(), nil)

	_, err := uc.Execute(context.Background(), 42, UpdateLeadInput{
		Status: strPtr("STATUS_QUE_NAO_EXISTE"),
	})

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeValidation, domainErr.Code)
	repo.AssertNotCalled(t, "UpdateWithProducts")
}
