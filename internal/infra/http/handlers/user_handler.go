package handlers

import (
	"net/http"

	"leadpro/internal/entity"
	"leadpro/internal/usecase"
)

type UserHandler struct {
	userRepo entity.UserRepositoryInterface
	saveUC   *usecase.SaveUserUseCase
}

func NewUserHandler(userRepo entity.UserRepositoryInterface, saveUC *usecase.SaveUserUseCase) *UserHandler {
	return &UserHandler{userRepo: userRepo, saveUC: saveUC}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userRepo.FindAll(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.userRepo.FindByID(r.Context(), id)
	if err != nil {
		if err == entity.ErrUserNotFound {
			respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Code: usecase.CodeNotFound})
			return
		}
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.SaveUserInput
	if !decodeJSON(w, r, &input) {
		return
	}

	user, err := h.saveUC.Create(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input usecase.SaveUserInput
	if !decodeJSON(w, r, &input) {
		return
	}

	user, err := h.saveUC.Update(r.Context(), id, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.saveUC.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Usuário removido com sucesso"})
}
