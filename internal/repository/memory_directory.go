package repository

import (
	"context"
	"sync"

	"theaterlist/internal/domain"
)

// MemoryDirectoryRepo supports running without a database.
type MemoryDirectoryRepo struct {
	mu        sync.RWMutex
	doctors   []domain.Doctor
	hospitals []domain.Hospital
}

func NewMemoryDirectoryRepo() *MemoryDirectoryRepo {
	return &MemoryDirectoryRepo{}
}

var _ DirectoryRepository = (*MemoryDirectoryRepo)(nil)

func (r *MemoryDirectoryRepo) ListDoctors(_ context.Context) ([]domain.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Doctor, len(r.doctors))
	copy(out, r.doctors)
	return out, nil
}

func (r *MemoryDirectoryRepo) AddDoctor(_ context.Context, d domain.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doctors = append(r.doctors, d)
	return nil
}

func (r *MemoryDirectoryRepo) DeleteDoctor(_ context.Context, doctorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, d := range r.doctors {
		if d.DoctorID == doctorID {
			r.doctors = append(r.doctors[:i], r.doctors[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryDirectoryRepo) ListHospitals(_ context.Context) ([]domain.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Hospital, len(r.hospitals))
	copy(out, r.hospitals)
	return out, nil
}

func (r *MemoryDirectoryRepo) AddHospital(_ context.Context, h domain.Hospital) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hospitals = append(r.hospitals, h)
	return nil
}

func (r *MemoryDirectoryRepo) DeleteHospital(_ context.Context, hospitalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, h := range r.hospitals {
		if h.HospitalID == hospitalID {
			r.hospitals = append(r.hospitals[:i], r.hospitals[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
