package repository

import (
	"context"
	"database/sql"
	"fmt"

	"theaterlist/internal/domain"
)

type PostgresDirectoryRepository struct {
	db *sql.DB
}

func NewPostgresDirectoryRepository(db *sql.DB) *PostgresDirectoryRepository {
	return &PostgresDirectoryRepository{db: db}
}

var _ DirectoryRepository = (*PostgresDirectoryRepository)(nil)

func (r *PostgresDirectoryRepository) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	query := `
		SELECT doctor_id::text, name, practice_number
		FROM doctors
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctors: %w", err)
	}
	defer rows.Close()

	var doctors []domain.Doctor
	for rows.Next() {
		var d domain.Doctor
		if err := rows.Scan(&d.DoctorID, &d.Name, &d.PracticeNumber); err != nil {
			return nil, fmt.Errorf("failed to scan doctor: %w", err)
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

func (r *PostgresDirectoryRepository) AddDoctor(ctx context.Context, d domain.Doctor) error {
	query := `
		INSERT INTO doctors (doctor_id, name, practice_number)
		VALUES ($1::uuid, $2, $3)
	`
	if _, err := r.db.ExecContext(ctx, query, d.DoctorID, d.Name, d.PracticeNumber); err != nil {
		return fmt.Errorf("failed to insert doctor: %w", err)
	}
	return nil
}

func (r *PostgresDirectoryRepository) DeleteDoctor(ctx context.Context, doctorID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM doctors WHERE doctor_id = $1::uuid`, doctorID)
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresDirectoryRepository) ListHospitals(ctx context.Context) ([]domain.Hospital, error) {
	query := `
		SELECT hospital_id::text, name
		FROM hospitals
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query hospitals: %w", err)
	}
	defer rows.Close()

	var hospitals []domain.Hospital
	for rows.Next() {
		var h domain.Hospital
		if err := rows.Scan(&h.HospitalID, &h.Name); err != nil {
			return nil, fmt.Errorf("failed to scan hospital: %w", err)
		}
		hospitals = append(hospitals, h)
	}
	return hospitals, rows.Err()
}

func (r *PostgresDirectoryRepository) AddHospital(ctx context.Context, h domain.Hospital) error {
	query := `
		INSERT INTO hospitals (hospital_id, name)
		VALUES ($1::uuid, $2)
	`
	if _, err := r.db.ExecContext(ctx, query, h.HospitalID, h.Name); err != nil {
		return fmt.Errorf("failed to insert hospital: %w", err)
	}
	return nil
}

func (r *PostgresDirectoryRepository) DeleteHospital(ctx context.Context, hospitalID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hospitals WHERE hospital_id = $1::uuid`, hospitalID)
	if err != nil {
		return fmt.Errorf("failed to delete hospital: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
