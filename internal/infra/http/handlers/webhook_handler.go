package handlers

import (
	"net/http"

	"leadpro/internal/entity"
	"leadpro/internal/usecase"
	"leadpro/internal/webhook"
)

type WebhookHandler struct {
	webhookRepo entity.WebhookRepositoryInterface
	saveUC      *usecase.SaveWebhookUseCase
	dispatcher  *webhook.Dispatcher
}

func NewWebhookHandler(
	webhookRepo entity.WebhookRepositoryInterface,
	saveUC *usecase.SaveWebhookUseCase,
	dispatcher *webhook.Dispatcher,
) *WebhookHandler {
	return &WebhookHandler{
		webhookRepo: webhookRepo,
		saveUC:      saveUC,
		dispatcher:  dispatcher,
	}
}

func (h *WebhookHandler) List(w http.ResponseWriter, r *http.Request) {
	webhooks, err := h.webhookRepo.FindAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, webhooks)
}

func (h *WebhookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	wh, err := h.webhookRepo.FindByID(r.Context(), id)
	if err != nil {
		if err == entity.ErrWebhookNotFound {
			respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Code: usecase.CodeNotFound})
			return
		}
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, wh)
}

func (h *WebhookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.SaveWebhookInput
	if !decodeJSON(w, r, &input) {
		return
	}

	wh, err := h.saveUC.Create(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, wh)
}

func (h *WebhookHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input usecase.SaveWebhookInput
	if !decodeJSON(w, r, &input) {
		return
	}

	wh, err := h.saveUC.Update(r.Context(), id, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, wh)
}

func (h *WebhookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.webhookRepo.Delete(r.Context(), id); err != nil {
		if err == entity.ErrWebhookNotFound {
			respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Code: usecase.CodeNotFound})
			return
		}
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Webhook removido com sucesso"})
}

// Test (POST /api/webhooks/{id}/test) entrega um payload de teste síncrono
// e devolve se o destino aceitou, para a tela de configuração.
func (h *WebhookHandler) Test(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	wh, err := h.webhookRepo.FindByID(r.Context(), id)
	if err != nil {
		if err == entity.ErrWebhookNotFound {
			respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Code: usecase.CodeNotFound})
			return
		}
		respondError(w, err)
		return
	}

	success := h.dispatcher.SendTest(r.Context(), wh)
	respondJSON(w, http.StatusOK, map[string]bool{"success": success})
}
