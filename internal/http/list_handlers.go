package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"theaterlist/internal/domain"
	"theaterlist/internal/listimport"
	"theaterlist/internal/repository"
	"theaterlist/internal/service"
)

// maxUploadBytes caps roster and quick-data spreadsheet uploads.
const maxUploadBytes = 10 << 20

// ListHandler serves the theater list endpoints.
type ListHandler struct {
	lists  *service.ListService
	logger *zap.Logger
}

func NewListHandler(lists *service.ListService, logger *zap.Logger) *ListHandler {
	return &ListHandler{lists: lists, logger: logger}
}

// GET /api/v1/lists
func (h *ListHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.lists.ListLists(r.Context())
	if err != nil {
		h.fail(w, "list lists", err)
		return
	}
	if lists == nil {
		lists = []domain.TheaterList{}
	}
	writeJSON(w, http.StatusOK, Ok(lists))
}

// POST /api/v1/lists/import (multipart: file, doctorName, hospitalLocation, date)
func (h *ListHandler) ImportList(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid multipart form"))
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("spreadsheet file is required"))
		return
	}
	defer file.Close()

	list, err := h.lists.ImportList(r.Context(), service.ImportListRequest{
		DoctorName:       r.FormValue("doctorName"),
		HospitalLocation: r.FormValue("hospitalLocation"),
		Date:             r.FormValue("date"),
		File:             file,
	})
	if err != nil {
		h.fail(w, "import list", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(list))
}

// GET /api/v1/lists/{id}
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request, listID string) {
	list, err := h.lists.GetList(r.Context(), listID)
	if err != nil {
		h.fail(w, "get list", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(list))
}

// DELETE /api/v1/lists/{id}
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request, listID string) {
	if err := h.lists.DeleteList(r.Context(), listID); err != nil {
		h.fail(w, "delete list", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]string{"list_id": listID}))
}

// PUT /api/v1/lists/{id}/patients/{idNumber}
func (h *ListHandler) UpdatePatient(w http.ResponseWriter, r *http.Request, listID, idNumber string) {
	var patient domain.Patient
	if err := readBodyJSON(r, maxUploadBytes, &patient); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid patient payload"))
		return
	}
	list, err := h.lists.UpdatePatient(r.Context(), listID, idNumber, patient)
	if err != nil {
		h.fail(w, "update patient", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(list))
}

// GET /api/v1/lists/{id}/quick-data
// Streams the quick data workbook as a download.
func (h *ListHandler) ExportQuickData(w http.ResponseWriter, r *http.Request, listID string) {
	resp, err := h.lists.QuickExport(r.Context(), listID)
	if err != nil {
		h.fail(w, "export quick data", err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resp.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(resp.Data)
}

// POST /api/v1/lists/{id}/quick-data (multipart: file)
func (h *ListHandler) ImportQuickData(w http.ResponseWriter, r *http.Request, listID string) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid multipart form"))
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("spreadsheet file is required"))
		return
	}
	defer file.Close()

	list, err := h.lists.QuickImport(r.Context(), listID, file)
	if err != nil {
		h.fail(w, "import quick data", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(list))
}

func (h *ListHandler) fail(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, Fail("theater list not found"))
	case errors.Is(err, listimport.ErrNoDataRows):
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
	default:
		h.logger.Error("List request failed", zap.String("op", op), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, Fail(err.Error()))
	}
}
