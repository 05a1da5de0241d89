package entity

import (
	"context"
	"time"
)

type InteractionType string

const (
	InteractionContatoInicial InteractionType = "CONTATO_INICIAL"
	InteractionQualificacao   InteractionType = "QUALIFICACAO"
	InteractionApresentacao   InteractionType = "APRESENTACAO"
	InteractionProposta       InteractionType = "PROPOSTA"
	InteractionCobranca       InteractionType = "COBRANCA"
	InteractionImplementacao  InteractionType = "IMPLEMENTACAO"
	InteractionOutro          InteractionType = "OUTRO"
)

func (t InteractionType) IsValid() bool {
	switch t {
	case InteractionContatoInicial, InteractionQualificacao, InteractionApresentacao,
		InteractionProposta, InteractionCobranca, InteractionImplementacao, InteractionOutro:
		return true
	}
	return false
}

// Interaction é imutável depois de criada: não existe endpoint de update.
type Interaction struct {
	ID            int             `json:"id"`
	LeadID        int             `json:"leadId"`
	Type          InteractionType `json:"tipo"`
	Content       string          `json:"conteudo"`
	MediaID       string          `json:"mediaId,omitempty"`
	MediaType     string          `json:"mediaType,omitempty"`
	MediaFilename string          `json:"mediaFilename,omitempty"`
	CreatedAt     time.Time       `json:"dataCriacao"`
	CreatedBy     string          `json:"usuarioCriacao"`
}

type InteractionRepositoryInterface interface {
	FindByLead(ctx context.Context, leadID int) ([]Interaction, error)
	Create(ctx context.Context, interaction *Interaction) error
}
