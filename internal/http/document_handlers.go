package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"theaterlist/internal/document"
	"theaterlist/internal/repository"
	"theaterlist/internal/service"
)

// DocumentHandler triggers document generation runs.
type DocumentHandler struct {
	documents *service.DocumentService
	logger    *zap.Logger
}

func NewDocumentHandler(documents *service.DocumentService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{documents: documents, logger: logger}
}

// POST /api/v1/lists/{id}/documents
// Responds as soon as the run is reserved; rendering continues in the
// background.
func (h *DocumentHandler) Trigger(w http.ResponseWriter, r *http.Request, listID string) {
	err := h.documents.Trigger(r.Context(), listID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusAccepted, Ok(map[string]string{"list_id": listID, "status": "started"}))
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, Fail("theater list not found"))
	case errors.Is(err, document.ErrEmptyList):
		writeJSON(w, http.StatusBadRequest, Fail("theater list has no patients"))
	case errors.Is(err, document.ErrGenerationInProgress):
		writeJSON(w, http.StatusConflict, Fail("document generation already in progress"))
	default:
		h.logger.Error("Document trigger failed", zap.String("list_id", listID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail(err.Error()))
	}
}
