package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"leadpro/internal/entity"
)

func validCreateInput() CreateLeadInput {
	return CreateLeadInput{
		Name:   "Maria Souza",
		Email:  "maria@empresa.com.br",
		Source: "INDICACAO",
		Products: []LeadProductInput{
			{Name: "EasyMaps", Value: 100, Discount: 20},
			{Name: "EasyFlow", Value: 50, Discount: 10},
		},
		GeneralDiscount: 15,
		CreatedBy:       "admin",
	}
}

func TestCreateLead_Sucesso(t *testing.T) {
	repo := new(MockLeadRepository)
	events := &FakeEventPublisher{}
	uc := NewCreateLeadUseCase(repo, events)

	repo.On("CreateWithProducts", mock.Anything, mock.AnythingOfType("*entity.Lead")).Return(nil)

	lead, err := uc.Execute(context.Background(), validCreateInput())

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusNovoLead, lead.Status)
	assert.Equal(t, 105.0, lead.TotalValue)
	assert.Equal(t, "admin", lead.CreatedBy)
	assert.Len(t, lead.Products, 2)
	assert.Equal(t, 80.0, lead.Products[0].FinalValue)

	// LEAD_CRIADO publicado depois do commit
	assert.Equal(t, []entity.WebhookEvent{entity.EventLeadCriado}, events.EventNames())
	repo.AssertExpectations(t)
}

func TestCreateLead_UsuarioVazioViraSistema(t *testing.T) {
	repo := new(MockLeadRepository)
	events := &FakeEventPublisher{}
	uc := NewCreateLeadUseCase(repo, events)

	repo.On("CreateWithProducts", mock.Anything, mock.Anything).Return(nil)

	input := validCreateInput()
	input.CreatedBy = ""
	lead, err := uc.Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "Sistema", lead.CreatedBy)
}

func TestCreateLead_ValidacaoFalha(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewCreateLeadUseCase(repo, &FakeEventPublisher{})

	cases := []struct {
		name   string
		mutate func(*CreateLeadInput)
	}{
		{"Sem nome", func(i *CreateLeadInput) { i.Name = "" }},
		{"Email inválido", func(i *CreateLeadInput) { i.Email = "não-é-email" }},
		{"Fonte desconhecida", func(i *CreateLeadInput) { i.Source = "OUTDOOR" }},
		{"Desconto geral negativo", func(i *CreateLeadInput) { i.GeneralDiscount = -5 }},
		{"Produto fora do catálogo", func(i *CreateLeadInput) {
			i.Products = []LeadProductInput{{Name: "EasyFake", Value: 10}}
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			input := validCreateInput()
			c.mutate(&input)

			_, err := uc.Execute(context.Background(), input)

			var domainErr *DomainError
			assert.ErrorAs(t, err, &domainErr)
			assert.Equal(t, CodeValidation, domainErr.Code)
		})
	}

	repo.AssertNotCalled(t, "CreateWithProducts")
}

func TestCreateLead_ProdutoDuplicadoEhConflito(t *testing.T) {
	repo := new(MockLeadRepository)
	uc := NewCreateLeadUseCase(repo, &FakeEventPublisher{})

	input := validCreateInput()
	input.Products = []LeadProductInput{
		{Name: "EasyMaps", Value: 100},
		{Name: "EasyMaps", Value: 200},
	}

	_, err := uc.Execute(context.Background(), input)

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeConflict, domainErr.Code)
	repo.AssertNotCalled(t, "CreateWithProducts")
}

func TestCreateLead_FalhaDeTransacaoNaoPublicaEvento(t *testing.T) {
	repo := new(MockLeadRepository)
	events := &FakeEventPublisher{}
	uc := NewCreateLeadUseCase(repo, events)

	repo.On("CreateWithProducts", mock.Anything, mock.Anything).Return(errors.New("deadlock"))

	_, err := uc.Execute(context.Background(), validCreateInput())

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeTransaction, domainErr.Code)
	assert.Empty(t, events.Published)
}

func TestCreateLead_FalhaNoPublisherNaoQuebraACriacao(t *testing.T) {
	repo := new(MockLeadRepository)
	events := &FakeEventPublisher{Err: errors.New("rabbitmq fora do ar")}
	uc := NewCreateLeadUseCase(repo, events)

	repo.On("CreateWithProducts", mock.Anything, mock.Anything).Return(nil)

	lead, err := uc.Execute(context.Background(), validCreateInput())

	assert.NoError(t, err)
	assert.NotNil(t, lead)
}
