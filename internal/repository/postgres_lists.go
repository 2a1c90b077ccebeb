package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"theaterlist/internal/domain"
)

// PostgresListsRepository persists theater lists with the patient roster
// as a JSONB document. A list is always read and written whole.
type PostgresListsRepository struct {
	db *sql.DB
}

func NewPostgresListsRepository(db *sql.DB) *PostgresListsRepository {
	return &PostgresListsRepository{db: db}
}

var _ ListsRepository = (*PostgresListsRepository)(nil)

func (r *PostgresListsRepository) CreateList(ctx context.Context, list *domain.TheaterList) error {
	patients, err := json.Marshal(list.Patients)
	if err != nil {
		return fmt.Errorf("failed to encode patients: %w", err)
	}

	query := `
		INSERT INTO theater_lists (list_id, doctor_name, hospital_location, list_date, patients)
		VALUES ($1::uuid, $2, $3, $4, $5::jsonb)
	`
	if _, err := r.db.ExecContext(ctx, query,
		list.ListID, list.Info.DoctorName, list.Info.HospitalLocation, list.Info.Date, patients); err != nil {
		return fmt.Errorf("failed to insert theater list: %w", err)
	}
	return nil
}

func (r *PostgresListsRepository) ListLists(ctx context.Context) ([]domain.TheaterList, error) {
	query := `
		SELECT list_id::text, doctor_name, hospital_location, list_date, patients
		FROM theater_lists
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query theater lists: %w", err)
	}
	defer rows.Close()

	var lists []domain.TheaterList
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, *list)
	}
	return lists, rows.Err()
}

func (r *PostgresListsRepository) GetList(ctx context.Context, listID string) (*domain.TheaterList, error) {
	query := `
		SELECT list_id::text, doctor_name, hospital_location, list_date, patients
		FROM theater_lists
		WHERE list_id = $1::uuid
	`
	row := r.db.QueryRowContext(ctx, query, listID)
	list, err := scanList(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return list, nil
}

func (r *PostgresListsRepository) SaveList(ctx context.Context, list *domain.TheaterList) error {
	patients, err := json.Marshal(list.Patients)
	if err != nil {
		return fmt.Errorf("failed to encode patients: %w", err)
	}

	query := `
		UPDATE theater_lists
		SET doctor_name = $2, hospital_location = $3, list_date = $4, patients = $5::jsonb
		WHERE list_id = $1::uuid
	`
	res, err := r.db.ExecContext(ctx, query,
		list.ListID, list.Info.DoctorName, list.Info.HospitalLocation, list.Info.Date, patients)
	if err != nil {
		return fmt.Errorf("failed to update theater list: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresListsRepository) DeleteList(ctx context.Context, listID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM theater_lists WHERE list_id = $1::uuid`, listID)
	if err != nil {
		return fmt.Errorf("failed to delete theater list: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanList(row rowScanner) (*domain.TheaterList, error) {
	var list domain.TheaterList
	var patientsRaw json.RawMessage
	if err := row.Scan(
		&list.ListID,
		&list.Info.DoctorName,
		&list.Info.HospitalLocation,
		&list.Info.Date,
		&patientsRaw,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan theater list: %w", err)
	}
	if err := json.Unmarshal(patientsRaw, &list.Patients); err != nil {
		return nil, fmt.Errorf("failed to decode patients for list %s: %w", list.ListID, err)
	}
	for i := range list.Patients {
		list.Patients[i].EnsureNotes()
	}
	return &list, nil
}
