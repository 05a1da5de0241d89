package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"leadpro/internal/entity"
)

// Custo alinhado com o saltRounds usado desde a primeira versão do sistema.
const bcryptCost = 12

type SaveUserUseCase struct {
	Users entity.UserRepositoryInterface
}

func NewSaveUserUseCase(users entity.UserRepositoryInterface) *SaveUserUseCase {
	return &SaveUserUseCase{Users: users}
}

func (uc *SaveUserUseCase) Create(ctx context.Context, input SaveUserInput) (*entity.User, error) {
	if errs := ValidateSaveUserInput(input, true); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         entity.UserRole(input.Role),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if user.Role == "" {
		user.Role = entity.RoleUsuario
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	if err := uc.Users.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, conflict("email já cadastrado")
		}
		return nil, err
	}
	return user, nil
}

// Update rehash da senha só quando uma senha não vazia chega no corpo.
func (uc *SaveUserUseCase) Update(ctx context.Context, id int, input SaveUserInput) (*entity.User, error) {
	if errs := ValidateSaveUserInput(input, false); len(errs) > 0 {
		return nil, validationFailed(errs)
	}

	user, err := uc.Users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, notFound("usuário não encontrado")
		}
		return nil, err
	}

	user.Name = input.Name
	user.Email = input.Email
	if input.Role != "" {
		user.Role = entity.UserRole(input.Role)
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
	if strings.TrimSpace(input.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()

	if err := uc.Users.Update(ctx, user); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, conflict("email já cadastrado")
		}
		return nil, err
	}
	return user, nil
}

func (uc *SaveUserUseCase) Delete(ctx context.Context, id int) error {
	user, err := uc.Users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return notFound("usuário não encontrado")
		}
		return err
	}
	if user.Role == entity.RoleAdmin {
		return conflict(entity.ErrAdminDeleteBlocked.Error())
	}
	return uc.Users.Delete(ctx, id)
}
