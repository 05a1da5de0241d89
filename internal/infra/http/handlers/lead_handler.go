package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"leadpro/internal/entity"
	"leadpro/internal/infra/http/middleware"
	"leadpro/internal/usecase"
)

type LeadHandler struct {
	leadRepo        entity.LeadRepositoryInterface
	interactionRepo entity.InteractionRepositoryInterface
	createUC        *usecase.CreateLeadUseCase
	updateUC        *usecase.UpdateLeadUseCase
	deleteUC        *usecase.DeleteLeadUseCase
}

func NewLeadHandler(
	leadRepo entity.LeadRepositoryInterface,
	interactionRepo entity.InteractionRepositoryInterface,
	createUC *usecase.CreateLeadUseCase,
	updateUC *usecase.UpdateLeadUseCase,
	deleteUC *usecase.DeleteLeadUseCase,
) *LeadHandler {
	return &LeadHandler{
		leadRepo:        leadRepo,
		interactionRepo: interactionRepo,
		createUC:        createUC,
		updateUC:        updateUC,
		deleteUC:        deleteUC,
	}
}

// List (GET /api/leads) devolve os leads sem os produtos, para a listagem.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.leadRepo.FindAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, leads)
}

// Get (GET /api/leads/{id}) devolve o lead completo, com produtos.
func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	lead, err := h.leadRepo.FindByID(r.Context(), id)
	if err != nil {
		if err == entity.ErrLeadNotFound {
			respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Code: usecase.CodeNotFound})
			return
		}
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if !decodeJSON(w, r, &input) {
		return
	}

	lead, err := h.createUC.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordLeadCreated(string(lead.Source))
	respondJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input usecase.UpdateLeadInput
	if !decodeJSON(w, r, &input) {
		return
	}

	lead, err := h.updateUC.Execute(r.Context(), id, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Lead removido com sucesso"})
}

// ListInteractions (GET /api/leads/{id}/interactions) — mais recentes primeiro.
func (h *LeadHandler) ListInteractions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if _, err := h.leadRepo.FindByID(r.Context(), id); err != nil {
		if err == entity.ErrLeadNotFound {
			respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Code: usecase.CodeNotFound})
			return
		}
		respondError(w, err)
		return
	}

	interactions, err := h.interactionRepo.FindByLead(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, interactions)
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "ID inválido"})
		return 0, false
	}
	return id, true
}
