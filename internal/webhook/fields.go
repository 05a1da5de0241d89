package webhook

import (
	"time"

	"leadpro/internal/entity"
)

// FieldSpec liga um nome de campo exportável a um accessor da projeção do lead.
// A lista é fechada: nomes fora dela são rejeitados quando a configuração do
// webhook é salva, nunca em tempo de dispatch.
type FieldSpec struct {
	Name      string
	Label     string
	Mandatory bool
	value     func(l *entity.Lead) (any, bool)
}

var LeadFields = []FieldSpec{
	{"id", "ID", true, func(l *entity.Lead) (any, bool) { return l.ID, true }},
	{"nome", "Nome", true, func(l *entity.Lead) (any, bool) { return l.Name, l.Name != "" }},
	{"email", "Email", true, func(l *entity.Lead) (any, bool) { return l.Email, l.Email != "" }},
	{"telefone", "Telefone", false, func(l *entity.Lead) (any, bool) { return l.Phone, l.Phone != "" }},
	{"empresa", "Empresa", false, func(l *entity.Lead) (any, bool) { return l.Company, l.Company != "" }},
	{"cargo", "Cargo", false, func(l *entity.Lead) (any, bool) { return l.Role, l.Role != "" }},
	{"fonte", "Fonte", false, func(l *entity.Lead) (any, bool) { return string(l.Source), l.Source != "" }},
	{"status", "Status", false, func(l *entity.Lead) (any, bool) { return string(l.Status), l.Status != "" }},
	{"valorContrato", "Valor do Contrato", false, func(l *entity.Lead) (any, bool) { return l.ContractValue, l.ContractValue != 0 }},
	{"observacoes", "Observações", false, func(l *entity.Lead) (any, bool) { return l.Notes, l.Notes != "" }},
	{"produtos", "Produtos", false, func(l *entity.Lead) (any, bool) { return l.Products, len(l.Products) > 0 }},
	{"descontoGeral", "Desconto Geral", false, func(l *entity.Lead) (any, bool) { return l.GeneralDiscount, l.GeneralDiscount != 0 }},
	{"valorTotal", "Valor Total", false, func(l *entity.Lead) (any, bool) { return l.TotalValue, true }},
	{"dataCriacao", "Data de Criação", false, func(l *entity.Lead) (any, bool) {
		return l.CreatedAt.Format(time.RFC3339), !l.CreatedAt.IsZero()
	}},
	{"dataAtualizacao", "Data de Atualização", false, func(l *entity.Lead) (any, bool) {
		return l.UpdatedAt.Format(time.RFC3339), !l.UpdatedAt.IsZero()
	}},
	{"usuarioCriacao", "Usuário de Criação", false, func(l *entity.Lead) (any, bool) { return l.CreatedBy, l.CreatedBy != "" }},
	{"usuarioAtualizacao", "Usuário de Atualização", false, func(l *entity.Lead) (any, bool) { return l.UpdatedBy, l.UpdatedBy != "" }},
}

// IsLeadField informa se o nome pertence à lista fechada de campos exportáveis.
func IsLeadField(name string) bool {
	for _, f := range LeadFields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// MandatoryLeadField informa se o campo é obrigatório. Obrigatoriedade é
// propriedade do campo, não escolha do operador.
func MandatoryLeadField(name string) bool {
	for _, f := range LeadFields {
		if f.Name == name {
			return f.Mandatory
		}
	}
	return false
}

// LeadProjection monta a projeção do lead para o payload canônico.
// Campos opcionais sem valor são omitidos, nunca serializados como null.
func LeadProjection(l *entity.Lead) map[string]any {
	out := make(map[string]any, len(LeadFields))
	for _, f := range LeadFields {
		if v, ok := f.value(l); ok {
			out[f.Name] = v
		}
	}
	return out
}

// DefaultEventConfigs devolve a configuração inicial de um webhook recém-criado:
// uma entrada por evento, só os campos obrigatórios habilitados.
func DefaultEventConfigs() []entity.EventConfig {
	configs := make([]entity.EventConfig, 0, len(entity.AllWebhookEvents))
	for _, event := range entity.AllWebhookEvents {
		fields := make([]entity.DataField, 0, len(LeadFields))
		for _, f := range LeadFields {
			fields = append(fields, entity.DataField{
				Field:     f.Name,
				Label:     f.Label,
				Active:    f.Mandatory,
				Mandatory: f.Mandatory,
			})
		}
		configs = append(configs, entity.EventConfig{
			Event:  event,
			Active: true,
			Fields: fields,
		})
	}
	return configs
}
