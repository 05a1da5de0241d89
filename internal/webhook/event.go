package webhook

import (
	"time"

	"leadpro/internal/entity"
)

type WebhookRef struct {
	ID   int    `json:"id"`
	Name string `json:"nome"`
}

type Change struct {
	Field    string `json:"campo"`
	Previous any    `json:"valorAnterior"`
	New      any    `json:"valorNovo"`
}

type InteractionData struct {
	ID        int                    `json:"id"`
	Type      entity.InteractionType `json:"tipo"`
	Content   string                 `json:"conteudo"`
	CreatedAt string                 `json:"dataCriacao"`
	CreatedBy string                 `json:"usuarioCriacao"`
}

// Payload é o envelope canônico entregue aos webhooks. O timestamp é sempre o
// horário do dispatch, não o de criação da entidade.
type Payload struct {
	Event       entity.WebhookEvent `json:"evento"`
	Timestamp   string              `json:"timestamp"`
	Webhook     *WebhookRef         `json:"webhook,omitempty"`
	Lead        map[string]any      `json:"lead,omitempty"`
	Change      *Change             `json:"mudanca,omitempty"`
	Interaction *InteractionData    `json:"interacao,omitempty"`
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func LeadCreated(lead *entity.Lead) Payload {
	return Payload{
		Event:     entity.EventLeadCriado,
		Timestamp: now(),
		Lead:      LeadProjection(lead),
	}
}

// LeadUpdated carrega só o estado pós-atualização; nenhum diff é calculado aqui.
func LeadUpdated(lead *entity.Lead) Payload {
	return Payload{
		Event:     entity.EventLeadAtualizado,
		Timestamp: now(),
		Lead:      LeadProjection(lead),
	}
}

// LeadDeleted recebe a projeção do lead como existia antes da exclusão.
func LeadDeleted(lead *entity.Lead) Payload {
	return Payload{
		Event:     entity.EventLeadDeletado,
		Timestamp: now(),
		Lead:      LeadProjection(lead),
	}
}

func StatusChanged(lead *entity.Lead, oldStatus, newStatus entity.LeadStatus) Payload {
	return Payload{
		Event:     entity.EventStatusAlterado,
		Timestamp: now(),
		Lead:      LeadProjection(lead),
		Change: &Change{
			Field:    "status",
			Previous: string(oldStatus),
			New:      string(newStatus),
		},
	}
}

func ProposalValueChanged(lead *entity.Lead, oldValue, newValue float64) Payload {
	return Payload{
		Event:     entity.EventValorPropostaAlterado,
		Timestamp: now(),
		Lead:      LeadProjection(lead),
		Change: &Change{
			Field:    "valorTotal",
			Previous: oldValue,
			New:      newValue,
		},
	}
}

// InteractionCreated usa um subconjunto da projeção do lead: id, nome, email e status.
func InteractionCreated(interaction *entity.Interaction, lead *entity.Lead) Payload {
	full := LeadProjection(lead)
	subset := make(map[string]any, 4)
	for _, campo := range []string{"id", "nome", "email", "status"} {
		if v, ok := full[campo]; ok {
			subset[campo] = v
		}
	}
	return Payload{
		Event:     entity.EventInteracaoCriada,
		Timestamp: now(),
		Lead:      subset,
		Interaction: &InteractionData{
			ID:        interaction.ID,
			Type:      interaction.Type,
			Content:   interaction.Content,
			CreatedAt: interaction.CreatedAt.Format(time.RFC3339),
			CreatedBy: interaction.CreatedBy,
		},
	}
}
