package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"leadpro/internal/usecase"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// respondError traduz erros de domínio para status HTTP. Erros fora da
// taxonomia viram 500 genérico para não vazar detalhe interno.
func respondError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		respondJSON(w, statusFor(domainErr.Code), errorResponse{
			Error: domainErr.Message,
			Code:  domainErr.Code,
		})
		return
	}

	log.Printf("❌ Erro inesperado no handler: %v", err)
	respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "Erro interno do servidor"})
}

func statusFor(code string) int {
	switch code {
	case usecase.CodeValidation:
		return http.StatusBadRequest
	case usecase.CodeConflict:
		return http.StatusConflict
	case usecase.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido: " + err.Error()})
		return false
	}
	return true
}
