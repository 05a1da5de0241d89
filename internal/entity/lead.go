package entity

import (
	"context"
	"time"
)

type LeadSource string

const (
	SourceIndicacao    LeadSource = "INDICACAO"
	SourceEvento       LeadSource = "EVENTO"
	SourceRedesSociais LeadSource = "REDES_SOCIAIS"
	SourceExCliente    LeadSource = "EX_CLIENTE"
	SourceParceiro     LeadSource = "PARCEIRO"
)

func (s LeadSource) IsValid() bool {
	switch s {
	case SourceIndicacao, SourceEvento, SourceRedesSociais, SourceExCliente, SourceParceiro:
		return true
	}
	return false
}

type LeadStatus string

const (
	// Etapa de entrada
	StatusNovoLead LeadStatus = "NOVO_LEAD"

	// Etapa de qualificação
	StatusLeadQualificado    LeadStatus = "LEAD_QUALIFICADO"
	StatusLeadNaoQualificado LeadStatus = "LEAD_NAO_QUALIFICADO"
	StatusDeletado           LeadStatus = "DELETADO"

	// Etapa de interesse
	StatusInteresse        LeadStatus = "INTERESSE"
	StatusNaoTeveInteresse LeadStatus = "NAO_TEVE_INTERESSE"

	// Etapa de apresentação
	StatusApresentacaoAgendada    LeadStatus = "APRESENTACAO_AGENDADA"
	StatusNaoPrecisouApresentacao LeadStatus = "NAO_PRECISOU_APRESENTACAO"
	StatusNaoFoiPossivelAgendar   LeadStatus = "NAO_FOI_POSSIVEL_AGENDAR"

	// Etapa da proposta
	StatusPropostaEnviada LeadStatus = "PROPOSTA_ENVIADA"
	StatusPropostaAceita  LeadStatus = "PROPOSTA_ACEITA"
	StatusPropostaNegada  LeadStatus = "PROPOSTA_NEGADA"

	// Etapa de criação do grupo
	StatusAguardandoDados       LeadStatus = "AGUARDANDO_DADOS"
	StatusDadosEnviados         LeadStatus = "DADOS_ENVIADOS"
	StatusGrupoCriado           LeadStatus = "GRUPO_CRIADO"
	StatusClienteEntrouGrupo    LeadStatus = "CLIENTE_ENTROU_GRUPO"
	StatusClienteNaoEntrouGrupo LeadStatus = "CLIENTE_NAO_ENTROU_GRUPO"

	// Etapa de implementação
	StatusAguardandoVMs    LeadStatus = "AGUARDANDO_VMS"
	StatusVMsEnviadas      LeadStatus = "VMS_ENVIADAS"
	StatusAtivacaoIniciada LeadStatus = "ATIVACAO_INICIADA"
	StatusImplantado       LeadStatus = "IMPLANTADO"

	// Etapa de cadastro e cobrança
	StatusCadastradoSGP LeadStatus = "CADASTRADO_SGP"
	StatusFaturado      LeadStatus = "FATURADO"
	StatusClienteAntigo LeadStatus = "CLIENTE ANTIGO"

	// Estados especiais
	StatusArmazenadoFuturo LeadStatus = "ARMAZENADO_FUTURO"
	StatusCobrar           LeadStatus = "COBRAR"
)

var leadStatuses = map[LeadStatus]bool{
	StatusNovoLead:                true,
	StatusLeadQualificado:         true,
	StatusLeadNaoQualificado:      true,
	StatusDeletado:                true,
	StatusInteresse:               true,
	StatusNaoTeveInteresse:        true,
	StatusApresentacaoAgendada:    true,
	StatusNaoPrecisouApresentacao: true,
	StatusNaoFoiPossivelAgendar:   true,
	StatusPropostaEnviada:         true,
	StatusPropostaAceita:          true,
	StatusPropostaNegada:          true,
	StatusAguardandoDados:         true,
	StatusDadosEnviados:           true,
	StatusGrupoCriado:             true,
	StatusClienteEntrouGrupo:      true,
	StatusClienteNaoEntrouGrupo:   true,
	StatusAguardandoVMs:           true,
	StatusVMsEnviadas:             true,
	StatusAtivacaoIniciada:        true,
	StatusImplantado:              true,
	StatusCadastradoSGP:           true,
	StatusFaturado:                true,
	StatusClienteAntigo:           true,
	StatusArmazenadoFuturo:        true,
	StatusCobrar:                  true,
}

func (s LeadStatus) IsValid() bool {
	return leadStatuses[s]
}

type Lead struct {
	ID              int           `json:"id"`
	Name            string        `json:"nome"`
	Email           string        `json:"email"`
	Phone           string        `json:"telefone,omitempty"`
	Company         string        `json:"empresa,omitempty"`
	Role            string        `json:"cargo,omitempty"`
	Source          LeadSource    `json:"fonte"`
	Status          LeadStatus    `json:"status"`
	ContractValue   float64       `json:"valorContrato"`
	Notes           string        `json:"observacoes,omitempty"`
	Products        []LeadProduct `json:"produtos,omitempty"`
	GeneralDiscount float64       `json:"descontoGeral"`
	TotalValue      float64       `json:"valorTotal"`
	CreatedAt       time.Time     `json:"dataCriacao"`
	UpdatedAt       time.Time     `json:"dataAtualizacao"`
	CreatedBy       string        `json:"usuarioCriacao,omitempty"`
	UpdatedBy       string        `json:"usuarioAtualizacao,omitempty"`
}

type LeadRepositoryInterface interface {
	FindAll(ctx context.Context) ([]Lead, error)
	FindByID(ctx context.Context, id int) (*Lead, error)
	// CreateWithProducts grava o lead e suas linhas de produto na mesma transação.
	CreateWithProducts(ctx context.Context, lead *Lead) error
	// UpdateWithProducts substitui os produtos por completo (delete + reinsert)
	// quando replaceProducts for true, tudo na mesma transação.
	UpdateWithProducts(ctx context.Context, lead *Lead, replaceProducts bool) error
	// Delete remove as interações do lead e o próprio lead na mesma transação.
	Delete(ctx context.Context, id int) error
}
