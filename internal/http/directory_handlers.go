package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"theaterlist/internal/domain"
	"theaterlist/internal/repository"
)

// DirectoryHandler manages the known doctors and hospitals.
type DirectoryHandler struct {
	directory repository.DirectoryRepository
	logger    *zap.Logger
}

func NewDirectoryHandler(directory repository.DirectoryRepository, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{directory: directory, logger: logger}
}

// GET /api/v1/directory/doctors
func (h *DirectoryHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.directory.ListDoctors(r.Context())
	if err != nil {
		h.fail(w, "list doctors", err)
		return
	}
	if doctors == nil {
		doctors = []domain.Doctor{}
	}
	writeJSON(w, http.StatusOK, Ok(doctors))
}

// POST /api/v1/directory/doctors
func (h *DirectoryHandler) AddDoctor(w http.ResponseWriter, r *http.Request) {
	var d domain.Doctor
	if err := readBodyJSON(r, 1<<20, &d); err != nil || strings.TrimSpace(d.Name) == "" {
		writeJSON(w, http.StatusBadRequest, Fail("doctor name is required"))
		return
	}
	d.DoctorID = uuid.NewString()
	if err := h.directory.AddDoctor(r.Context(), d); err != nil {
		h.fail(w, "add doctor", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(d))
}

// DELETE /api/v1/directory/doctors/{id}
func (h *DirectoryHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request, doctorID string) {
	if err := h.directory.DeleteDoctor(r.Context(), doctorID); err != nil {
		h.fail(w, "delete doctor", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]string{"doctor_id": doctorID}))
}

// GET /api/v1/directory/hospitals
func (h *DirectoryHandler) GetHospitals(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.directory.ListHospitals(r.Context())
	if err != nil {
		h.fail(w, "list hospitals", err)
		return
	}
	if hospitals == nil {
		hospitals = []domain.Hospital{}
	}
	writeJSON(w, http.StatusOK, Ok(hospitals))
}

// POST /api/v1/directory/hospitals
func (h *DirectoryHandler) AddHospital(w http.ResponseWriter, r *http.Request) {
	var hosp domain.Hospital
	if err := readBodyJSON(r, 1<<20, &hosp); err != nil || strings.TrimSpace(hosp.Name) == "" {
		writeJSON(w, http.StatusBadRequest, Fail("hospital name is required"))
		return
	}
	hosp.HospitalID = uuid.NewString()
	if err := h.directory.AddHospital(r.Context(), hosp); err != nil {
		h.fail(w, "add hospital", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(hosp))
}

// DELETE /api/v1/directory/hospitals/{id}
func (h *DirectoryHandler) DeleteHospital(w http.ResponseWriter, r *http.Request, hospitalID string) {
	if err := h.directory.DeleteHospital(r.Context(), hospitalID); err != nil {
		h.fail(w, "delete hospital", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]string{"hospital_id": hospitalID}))
}

func (h *DirectoryHandler) fail(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, Fail("directory entry not found"))
		return
	}
	h.logger.Error("Directory request failed", zap.String("op", op), zap.Error(err))
	writeJSON(w, http.StatusInternalServerError, Fail(err.Error()))
}
