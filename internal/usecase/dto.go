package usecase

import "leadpro/internal/entity"

type LeadProductInput struct {
	Name     string  `json:"nome"`
	Value    float64 `json:"valor"`
	Discount float64 `json:"desconto"`
}

type CreateLeadInput struct {
	Name            string             `json:"nome"`
	Email           string             `json:"email"`
	Phone           string             `json:"telefone"`
	Company         string             `json:"empresa"`
	Role            string             `json:"cargo"`
	Source          string             `json:"fonte"`
	ContractValue   float64            `json:"valorContrato"`
	Notes           string             `json:"observacoes"`
	Products        []LeadProductInput `json:"produtos"`
	GeneralDiscount float64            `json:"descontoGeral"`
	CreatedBy       string             `json:"usuarioCriacao"`
}

// UpdateLeadInput é parcial: só campos presentes no corpo são aplicados.
type UpdateLeadInput struct {
	Name            *string             `json:"nome"`
	Email           *string             `json:"email"`
	Phone           *string             `json:"telefone"`
	Company         *string             `json:"empresa"`
	Role            *string             `json:"cargo"`
	Source          *string             `json:"fonte"`
	Status          *string             `json:"status"`
	ContractValue   *float64            `json:"valorContrato"`
	Notes           *string             `json:"observacoes"`
	Products        *[]LeadProductInput `json:"produtos"`
	GeneralDiscount *float64            `json:"descontoGeral"`
	UpdatedBy       string              `json:"usuarioAtualizacao"`
}

type CreateInteractionInput struct {
	LeadID        int    `json:"leadId"`
	Type          string `json:"tipo"`
	Content       string `json:"conteudo"`
	MediaID       string `json:"mediaId"`
	MediaType     string `json:"mediaType"`
	MediaFilename string `json:"mediaFilename"`
	CreatedBy     string `json:"usuarioCriacao"`
}

type SaveWebhookInput struct {
	Name         string               `json:"nome"`
	URL          string               `json:"url"`
	Active       bool                 `json:"ativo"`
	Events       []string             `json:"eventos"`
	EventConfigs []entity.EventConfig `json:"configuracaoEventos"`
}

type SaveUserInput struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	Role     string `json:"role"`
	Active   *bool  `json:"ativo"`
}
