package entity

import "errors"

var (
	ErrLeadNotFound       = errors.New("lead não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrWebhookNotFound    = errors.New("webhook não encontrado")
	ErrEmailAlreadyExists = errors.New("email já cadastrado")
	ErrAdminDeleteBlocked = errors.New("não é possível excluir usuários administradores")
	ErrMediaNotFound      = errors.New("mídia não encontrada")
)
