package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leadpro/internal/entity"
)

func TestValidateWebhookInput(t *testing.T) {
	valid := SaveWebhookInput{
		Name:   "CRM Externo",
		URL:    "https://crm.example.com/hooks/leadpro",
		Events: []string{"LEAD_CRIADO", "STATUS_ALTERADO"},
	}

	t.Run("Entrada válida passa limpa", func(t *testing.T) {
		assert.Empty(t, ValidateWebhookInput(valid))
	})

	t.Run("URL precisa ser http ou https", func(t *testing.T) {
		for _, bad := range []string{"ftp://x.com/hook", "não é url", "javascript:alert(1)", ""} {
			input := valid
			input.URL = bad
			assert.NotEmpty(t, ValidateWebhookInput(input), "url %q deveria falhar", bad)
		}
	})

	t.Run("Evento desconhecido é rejeitado", func(t *testing.T) {
		input := valid
		input.Events = []string{"LEAD_CRIADO", "LEAD_EXPLODIU"}
		errs := ValidateWebhookInput(input)
		assert.Len(t, errs, 1)
		assert.Equal(t, "eventos", errs[0].Field)
	})

	t.Run("Campo fora da lista fechada é rejeitado no save", func(t *testing.T) {
		input := valid
		input.EventConfigs = []entity.EventConfig{{
			Event: entity.EventLeadCriado,
			Fields: []entity.DataField{
				{Field: "nome"},
				{Field: "cpf"},
			},
		}}
		errs := ValidateWebhookInput(input)
		assert.Len(t, errs, 1)
		assert.Contains(t, errs[0].Message, "cpf")
	})
}

func TestValidateCreateInteractionInput(t *testing.T) {
	valid := CreateInteractionInput{
		LeadID:  42,
		Type:    "CONTATO_INICIAL",
		Content: "Ligação feita, cliente pediu proposta",
	}

	assert.Empty(t, ValidateCreateInteractionInput(valid))

	t.Run("Tipo precisa estar no catálogo", func(t *testing.T) {
		input := valid
		input.Type = "TELEPATIA"
		assert.NotEmpty(t, ValidateCreateInteractionInput(input))
	})

	t.Run("Mídia sem tipo é rejeitada", func(t *testing.T) {
		input := valid
		input.MediaID = "b2b7c6aa-1111-4222-8333-444455556666"
		errs := ValidateCreateInteractionInput(input)
		assert.Len(t, errs, 1)
		assert.Equal(t, "mediaType", errs[0].Field)

		input.MediaType = "audio/ogg"
		assert.Empty(t, ValidateCreateInteractionInput(input))
	})
}

func TestValidateSaveUserInput(t *testing.T) {
	valid := SaveUserInput{
		Name:     "João Admin",
		Email:    "joao@leadpro.com.br",
		Password: "s3nh4-f0rte",
		Role:     "ADMIN",
	}

	assert.Empty(t, ValidateSaveUserInput(valid, true))

	t.Run("Senha obrigatória só na criação", func(t *testing.T) {
		input := valid
		input.Password = ""
		assert.NotEmpty(t, ValidateSaveUserInput(input, true))
		assert.Empty(t, ValidateSaveUserInput(input, false))
	})

	t.Run("Role fora do par ADMIN/USUARIO", func(t *testing.T) {
		input := valid
		input.Role = "SUPERADMIN"
		assert.NotEmpty(t, ValidateSaveUserInput(input, true))
	})
}
