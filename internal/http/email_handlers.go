package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"theaterlist/internal/repository"
	"theaterlist/internal/service"
)

// EmailHandler renders and optionally sends the billing email for a list.
type EmailHandler struct {
	email  *service.EmailService
	logger *zap.Logger
}

func NewEmailHandler(email *service.EmailService, logger *zap.Logger) *EmailHandler {
	return &EmailHandler{email: email, logger: logger}
}

// GET /api/v1/lists/{id}/email
func (h *EmailHandler) Compose(w http.ResponseWriter, r *http.Request, listID string) {
	msg, err := h.email.Compose(r.Context(), listID)
	if err != nil {
		h.fail(w, "compose email", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(msg))
}

// POST /api/v1/lists/{id}/email {to}
func (h *EmailHandler) Send(w http.ResponseWriter, r *http.Request, listID string) {
	var req struct {
		To string `json:"to"`
	}
	if err := readBodyJSON(r, 1<<20, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid request body"))
		return
	}
	msg, err := h.email.Send(r.Context(), listID, req.To)
	if err != nil {
		h.fail(w, "send email", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(msg))
}

func (h *EmailHandler) fail(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, Fail("theater list not found"))
		return
	}
	h.logger.Error("Email request failed", zap.String("op", op), zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, Fail(err.Error()))
}
