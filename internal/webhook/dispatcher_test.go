package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"leadpro/internal/entity"
)

type stubRegistry struct {
	webhooks []entity.Webhook
	err      error
}

func (r *stubRegistry) FindAll(ctx context.Context) ([]entity.Webhook, error) {
	return r.webhooks, r.err
}

func activeWebhook(id int, name, url string, events ...entity.WebhookEvent) entity.Webhook {
	return entity.Webhook{
		ID:     id,
		Name:   name,
		URL:    url,
		Active: true,
		Events: events,
	}
}

func TestDispatch_EntregaSoParaInscritosAtivos(t *testing.T) {
	var hits int32
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer target.Close()

	var wrongHits int32
	wrongTarget := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&wrongHits, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer wrongTarget.Close()

	inactive := activeWebhook(3, "Desligado", wrongTarget.URL, entity.EventLeadCriado)
	inactive.Active = false

	registry := &stubRegistry{webhooks: []entity.Webhook{
		activeWebhook(1, "Inscrito", target.URL, entity.EventLeadCriado),
		activeWebhook(2, "Outro Evento", wrongTarget.URL, entity.EventLeadDeletado),
		inactive,
	}}

	d := NewDispatcher(registry)
	d.Dispatch(context.Background(), LeadCreated(&entity.Lead{ID: 1, Name: "Fulano", Email: "f@x.com"}))

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.Equal(t, int32(0), atomic.LoadInt32(&wrongHits))
}

func TestDispatch_FalhaDeUmAlvoNaoImpedeOsDemais(t *testing.T) {
	var okHits int32
	okTarget := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&okHits, 1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer okTarget.Close()

	badTarget := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer badTarget.Close()

	registry := &stubRegistry{webhooks: []entity.Webhook{
		activeWebhook(1, "Quebrado", badTarget.URL, entity.EventLeadCriado),
		activeWebhook(2, "Saudável", okTarget.URL, entity.EventLeadCriado),
		{ID: 3, Name: "Inalcançável", URL: "http://127.0.0.1:1/webhook", Active: true,
			Events: []entity.WebhookEvent{entity.EventLeadCriado}},
	}}

	d := NewDispatcher(registry)
	d.Dispatch(context.Background(), LeadCreated(&entity.Lead{ID: 1, Name: "Fulano", Email: "f@x.com"}))

	assert.Equal(t, int32(1), atomic.LoadInt32(&okHits))
}

func TestDispatch_HeadersECorpoFiltrado(t *testing.T) {
	var gotHeaders http.Header
	var gotBody map[string]any

	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer target.Close()

	wh := activeWebhook(5, "Integração", target.URL, entity.EventLeadCriado)
	wh.EventConfigs = []entity.EventConfig{{
		Event:  entity.EventLeadCriado,
		Active: true,
		Fields: []entity.DataField{
			{Field: "id", Active: true, Mandatory: true},
			{Field: "nome", Active: true, Mandatory: true},
			{Field: "email", Active: false, Mandatory: true},
			{Field: "telefone", Active: false},
		},
	}}

	registry := &stubRegistry{webhooks: []entity.Webhook{wh}}
	d := NewDispatcher(registry)

	lead := &entity.Lead{ID: 9, Name: "Maria", Email: "maria@x.com", Phone: "11999990000"}
	d.Dispatch(context.Background(), LeadCreated(lead))

	assert.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	assert.Equal(t, "LeadPro-Webhook/1.0", gotHeaders.Get("User-Agent"))
	assert.Equal(t, "LEAD_CRIADO", gotHeaders.Get("X-Webhook-Event"))
	assert.Equal(t, "LeadPro", gotHeaders.Get("X-Webhook-Source"))

	assert.Equal(t, "LEAD_CRIADO", gotBody["evento"])
	webhookSection := gotBody["webhook"].(map[string]any)
	assert.Equal(t, "Integração", webhookSection["nome"])

	leadSection := gotBody["lead"].(map[string]any)
	assert.Equal(t, "Maria", leadSection["nome"])
	assert.Equal(t, "maria@x.com", leadSection["email"])
	assert.NotContains(t, leadSection, "telefone")
}

func TestDispatch_ErroNoRegistroNaoDerrubaNada(t *testing.T) {
	registry := &stubRegistry{err: assert.AnError}
	d := NewDispatcher(registry)

	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), LeadCreated(&entity.Lead{ID: 1}))
	})
}

func TestSendTest_RespostaDoAlvoEhObservavel(t *testing.T) {
	var gotBody map[string]any
	okTarget := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer okTarget.Close()

	badTarget := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer badTarget.Close()

	d := NewDispatcher(&stubRegistry{})

	okWh := activeWebhook(1, "Teste OK", okTarget.URL)
	assert.True(t, d.SendTest(context.Background(), &okWh))
	assert.Equal(t, "TEST", gotBody["evento"])
	assert.Equal(t, "Teste de webhook do LeadPro", gotBody["mensagem"])

	badWh := activeWebhook(2, "Teste Ruim", badTarget.URL)
	assert.False(t, d.SendTest(context.Background(), &badWh))

	downWh := activeWebhook(3, "Fora do Ar", "http://127.0.0.1:1/webhook")
	assert.False(t, d.SendTest(context.Background(), &downWh))
}
