package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"theaterlist/internal/service"
)

// SettingsHandler exposes the editable templates (email header/body,
// transcription prompt).
type SettingsHandler struct {
	settings *service.SettingsService
	logger   *zap.Logger
}

func NewSettingsHandler(settings *service.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{settings: settings, logger: logger}
}

// GET /api/v1/settings
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	all, err := h.settings.GetAll(r.Context())
	if err != nil {
		h.logger.Error("Failed to read settings", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(all))
}

// PUT /api/v1/settings {key, value}
func (h *SettingsHandler) PutSetting(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := readBodyJSON(r, 1<<20, &req); err != nil || req.Key == "" {
		writeJSON(w, http.StatusBadRequest, Fail("key is required"))
		return
	}
	if err := h.settings.Set(r.Context(), req.Key, req.Value); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]string{"key": req.Key}))
}
