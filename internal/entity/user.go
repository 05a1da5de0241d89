package entity

import (
	"context"
	"time"
)

type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleUsuario UserRole = "USUARIO"
)

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUsuario
}

type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	// PasswordHash nunca sai na API.
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Active       bool      `json:"ativo"`
	CreatedAt    time.Time `json:"dataCriacao"`
	UpdatedAt    time.Time `json:"dataAtualizacao"`
}

type UserRepositoryInterface interface {
	FindAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id int) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int) error
}
