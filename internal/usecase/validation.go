package usecase

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"

	"leadpro/internal/entity"
	"leadpro/internal/webhook"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationFailed(errors []ValidationError) *DomainError {
	parts := make([]string, 0, len(errors))
	for _, e := range errors {
		parts = append(parts, e.Error())
	}
	return &DomainError{
		Code:    CodeValidation,
		Message: "validação falhou: " + strings.Join(parts, "; "),
	}
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"nome", "é obrigatório"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "é obrigatório"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "é inválido"})
	}

	if strings.TrimSpace(input.Source) == "" {
		errors = append(errors, ValidationError{"fonte", "é obrigatória"})
	} else if !entity.LeadSource(input.Source).IsValid() {
		errors = append(errors, ValidationError{"fonte", "é inválida"})
	}

	if input.GeneralDiscount < 0 {
		errors = append(errors, ValidationError{"descontoGeral", "não pode ser negativo"})
	}

	errors = append(errors, validateProducts(input.Products)...)
	return errors
}

// validateProducts cobre o catálogo fechado; duplicidade é tratada à parte
// como conflito, não como erro de validação.
func validateProducts(products []LeadProductInput) []ValidationError {
	var errors []ValidationError
	for _, p := range products {
		if !entity.ProductName(p.Name).IsValid() {
			errors = append(errors, ValidationError{"produtos", fmt.Sprintf("produto %q não existe no catálogo", p.Name)})
		}
	}
	return errors
}

func duplicatedProduct(products []LeadProductInput) (string, bool) {
	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if seen[p.Name] {
			return p.Name, true
		}
		seen[p.Name] = true
	}
	return "", false
}

func ValidateCreateInteractionInput(input CreateInteractionInput) []ValidationError {
	var errors []ValidationError

	if input.LeadID <= 0 {
		errors = append(errors, ValidationError{"leadId", "é obrigatório"})
	}
	if strings.TrimSpace(input.Type) == "" {
		errors = append(errors, ValidationError{"tipo", "é obrigatório"})
	} else if !entity.InteractionType(input.Type).IsValid() {
		errors = append(errors, ValidationError{"tipo", "é inválido"})
	}
	if strings.TrimSpace(input.Content) == "" {
		errors = append(errors, ValidationError{"conteudo", "é obrigatório"})
	}
	if input.MediaID != "" && input.MediaType == "" {
		errors = append(errors, ValidationError{"mediaType", "é obrigatório quando mediaId é informado"})
	}

	return errors
}

// ValidateWebhookInput valida também os nomes de campo da configuração —
// a lista de campos é fechada e a checagem acontece no save, não no dispatch.
func ValidateWebhookInput(input SaveWebhookInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"nome", "é obrigatório"})
	}

	if strings.TrimSpace(input.URL) == "" {
		errors = append(errors, ValidationError{"url", "é obrigatória"})
	} else if !isValidWebhookURL(input.URL) {
		errors = append(errors, ValidationError{"url", "deve ser http ou https"})
	}

	for _, e := range input.Events {
		if !entity.WebhookEvent(e).IsValid() {
			errors = append(errors, ValidationError{"eventos", fmt.Sprintf("evento %q é desconhecido", e)})
		}
	}

	for _, config := range input.EventConfigs {
		if !config.Event.IsValid() {
			errors = append(errors, ValidationError{"configuracaoEventos", fmt.Sprintf("evento %q é desconhecido", config.Event)})
		}
		for _, field := range config.Fields {
			if !webhook.IsLeadField(field.Field) {
				errors = append(errors, ValidationError{"configuracaoEventos", fmt.Sprintf("campo %q não é exportável", field.Field)})
			}
		}
	}

	return errors
}

func isValidWebhookURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func ValidateSaveUserInput(input SaveUserInput, creating bool) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"nome", "é obrigatório"})
	}
	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "é obrigatório"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "é inválido"})
	}
	if creating && strings.TrimSpace(input.Password) == "" {
		errors = append(errors, ValidationError{"senha", "é obrigatória"})
	}
	if input.Role != "" && !entity.UserRole(input.Role).IsValid() {
		errors = append(errors, ValidationError{"role", "deve ser ADMIN ou USUARIO"})
	}

	return errors
}
