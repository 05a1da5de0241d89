package handlers

import (
	"net/http"

	"leadpro/internal/infra/http/middleware"
	"leadpro/internal/usecase"
)

type InteractionHandler struct {
	createUC *usecase.CreateInteractionUseCase
}

func NewInteractionHandler(createUC *usecase.CreateInteractionUseCase) *InteractionHandler {
	return &InteractionHandler{createUC: createUC}
}

func (h *InteractionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateInteractionInput
	if !decodeJSON(w, r, &input) {
		return
	}

	interaction, err := h.createUC.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordInteractionCreated(string(interaction.Type))
	respondJSON(w, http.StatusCreated, interaction)
}
