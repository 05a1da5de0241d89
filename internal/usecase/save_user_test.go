package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"leadpro/internal/entity"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestSaveUser_CreateFazHashDaSenha(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewSaveUserUseCase(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := uc.Create(context.Background(), SaveUserInput{
		Name:     "João",
		Email:    "joao@leadpro.com.br",
		Password: "s3nh4-f0rte",
	})

	assert.NoError(t, err)
	assert.NotEqual(t, "s3nh4-f0rte", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3nh4-f0rte")))
	// Role default quando não informada
	assert.Equal(t, entity.RoleUsuario, user.Role)
	assert.True(t, user.Active)
}

func TestSaveUser_EmailDuplicadoEhConflito(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewSaveUserUseCase(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	_, err := uc.Create(context.Background(), SaveUserInput{
		Name:     "João",
		Email:    "joao@leadpro.com.br",
		Password: "abc123",
	})

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeConflict, domainErr.Code)
}

func TestSaveUser_UpdateSemSenhaNaoMexeNoHash(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewSaveUserUseCase(repo)

	stored := &entity.User{ID: 1, Name: "João", Email: "joao@leadpro.com.br",
		PasswordHash: "$2a$12$hash-antigo", Role: entity.RoleUsuario, Active: true}
	repo.On("FindByID", mock.Anything, 1).Return(stored, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	user, err := uc.Update(context.Background(), 1, SaveUserInput{
		Name:  "João Silva",
		Email: "joao@leadpro.com.br",
	})

	assert.NoError(t, err)
	assert.Equal(t, "$2a$12$hash-antigo", user.PasswordHash)
	assert.Equal(t, "João Silva", user.Name)
}

func TestSaveUser_DeleteBloqueiaAdmin(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewSaveUserUseCase(repo)

	admin := &entity.User{ID: 1, Name: "Root", Role: entity.RoleAdmin}
	repo.On("FindByID", mock.Anything, 1).Return(admin, nil)

	err := uc.Delete(context.Background(), 1)

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeConflict, domainErr.Code)
	repo.AssertNotCalled(t, "Delete")
}

func TestSaveUser_DeleteUsuarioComum(t *testing.T) {
	repo := new(MockUserRepository)
	uc := NewSaveUserUseCase(repo)

	comum := &entity.User{ID: 2, Name: "Vendedor", Role: entity.RoleUsuario}
	repo.On("FindByID", mock.Anything, 2).Return(comum, nil)
	repo.On("Delete", mock.Anything, 2).Return(nil)

	assert.NoError(t, uc.Delete(context.Background(), 2))
	repo.AssertExpectations(t)
}
