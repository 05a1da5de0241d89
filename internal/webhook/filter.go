package webhook

import "leadpro/internal/entity"

// FilterPayload projeta o payload canônico para o que o operador do webhook
// optou por receber no evento.
//
// Sem EventConfig para o evento, sai só o envelope (evento, timestamp, webhook)
// — ausência de configuração significa "não exportar nada", não "exportar tudo".
// Com configuração, entram os campos do lead com ativo == true ou
// obrigatorio == true (obrigatório vence, independente do flag ativo).
// As seções mudanca e interacao passam sem filtragem; o filtro de campos só se
// aplica ao lead.
func FilterPayload(w *entity.Webhook, p Payload) Payload {
	out := Payload{
		Event:     p.Event,
		Timestamp: p.Timestamp,
		Webhook:   &WebhookRef{ID: w.ID, Name: w.Name},
	}

	config := w.ConfigFor(p.Event)
	if config == nil {
		return out
	}

	filtered := make(map[string]any)
	for _, field := range config.Fields {
		if !field.Active && !field.Mandatory {
			continue
		}
		if value, ok := p.Lead[field.Field]; ok {
			filtered[field.Field] = value
		}
	}
	if len(filtered) > 0 {
		out.Lead = filtered
	}

	out.Change = p.Change
	out.Interaction = p.Interaction
	return out
}
