package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"leadpro/internal/entity"
	"leadpro/internal/webhook"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id int) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) CreateWithProducts(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateWithProducts(ctx context.Context, lead *entity.Lead, replaceProducts bool) error {
	args := m.Called(ctx, lead, replaceProducts)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) FindByLead(ctx context.Context, leadID int) ([]entity.Interaction, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Interaction), args.Error(1)
}

func (m *MockInteractionRepository) Create(ctx context.Context, interaction *entity.Interaction) error {
	args := m.Called(ctx, interaction)
	return args.Error(0)
}

type MockWebhookRepository struct {
	mock.Mock
}

func (m *MockWebhookRepository) FindAll(ctx context.Context) ([]entity.Webhook, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Webhook), args.Error(1)
}

func (m *MockWebhookRepository) FindByID(ctx context.Context, id int) (*entity.Webhook, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Webhook), args.Error(1)
}

func (m *MockWebhookRepository) Create(ctx context.Context, wh *entity.Webhook) error {
	args := m.Called(ctx, wh)
	return args.Error(0)
}

func (m *MockWebhookRepository) Update(ctx context.Context, wh *entity.Webhook) error {
	args := m.Called(ctx, wh)
	return args.Error(0)
}

func (m *MockWebhookRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// FakeEventPublisher guarda os payloads publicados, na ordem.
type FakeEventPublisher struct {
	Published []webhook.Payload
	Err       error
}

func (f *FakeEventPublisher) PublishEvent(ctx context.Context, payload webhook.Payload) error {
	if f.Err != nil {
		return f.Err
	}
	f.Published = append(f.Published, payload)
	return nil
}

func (f *FakeEventPublisher) EventNames() []entity.WebhookEvent {
	out := make([]entity.WebhookEvent, 0, len(f.Published))
	for _, p := range f.Published {
		out = append(out, p.Event)
	}
	return out
}
