package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leadpro/internal/entity"
	"leadpro/internal/infra/media"
	"leadpro/internal/usecase"
)

// 16MB cobre áudios de WhatsApp e PDFs de proposta.
const maxUploadSize = 16 << 20

type MediaHandler struct {
	store *media.Store
}

func NewMediaHandler(store *media.Store) *MediaHandler {
	return &MediaHandler{store: store}
}

// Upload (POST /api/media/upload) recebe multipart com o campo "file".
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Arquivo inválido ou grande demais"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "Campo 'file' é obrigatório"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(w, err)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	metadata, err := h.store.Save(r.Context(), data, header.Filename, mimeType)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, metadata)
}

// Download (GET /api/media/{id}) serve o binário com o MIME original.
func (h *MediaHandler) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "ID inválido"})
		return
	}

	data, metadata, err := h.store.Get(r.Context(), id)
	if err != nil {
		if err == entity.ErrMediaNotFound {
			respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Code: usecase.CodeNotFound})
			return
		}
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", metadata.MimeType)
	w.Header().Set("Content-Disposition", `inline; filename="`+metadata.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "ID inválido"})
		return
	}

	exists, err := h.store.Exists(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	if !exists {
		respondJSON(w, http.StatusNotFound, errorResponse{Error: entity.ErrMediaNotFound.Error(), Code: usecase.CodeNotFound})
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Mídia removida com sucesso"})
}
