package repository

import (
	"context"
	"errors"

	"theaterlist/internal/domain"
)

var ErrNotFound = errors.New("not found")

// ListsRepository stores theater lists. Patients travel with their list
// as one document; there is no standalone patient record.
type ListsRepository interface {
	CreateList(ctx context.Context, list *domain.TheaterList) error
	ListLists(ctx context.Context) ([]domain.TheaterList, error)
	GetList(ctx context.Context, listID string) (*domain.TheaterList, error)
	SaveList(ctx context.Context, list *domain.TheaterList) error
	DeleteList(ctx context.Context, listID string) error
}

// DirectoryRepository stores the practice's known surgeons and hospitals.
type DirectoryRepository interface {
	ListDoctors(ctx context.Context) ([]domain.Doctor, error)
	AddDoctor(ctx context.Context, d domain.Doctor) error
	DeleteDoctor(ctx context.Context, doctorID string) error
	ListHospitals(ctx context.Context) ([]domain.Hospital, error)
	AddHospital(ctx context.Context, h domain.Hospital) error
	DeleteHospital(ctx context.Context, hospitalID string) error
}
