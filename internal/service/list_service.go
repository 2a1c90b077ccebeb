package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"theaterlist/internal/domain"
	"theaterlist/internal/listimport"
	"theaterlist/internal/quickdata"
	"theaterlist/internal/repository"
)

// ListService owns the theater list lifecycle: import, edits, quick-data
// export and merge-back.
type ListService struct {
	lists     repository.ListsRepository
	directory repository.DirectoryRepository
	logger    *zap.Logger
}

func NewListService(lists repository.ListsRepository, directory repository.DirectoryRepository, logger *zap.Logger) *ListService {
	return &ListService{
		lists:     lists,
		directory: directory,
		logger:    logger,
	}
}

// ImportListRequest carries a new list's header plus the roster spreadsheet.
type ImportListRequest struct {
	DoctorName       string
	HospitalLocation string
	Date             string // yyyy-mm-dd
	File             io.Reader
}

// ImportList parses the roster spreadsheet and creates a theater list.
// A doctor or hospital not yet in the directory is added so the next
// import can pick it from the known set.
func (s *ListService) ImportList(ctx context.Context, req ImportListRequest) (*domain.TheaterList, error) {
	if strings.TrimSpace(req.DoctorName) == "" {
		return nil, fmt.Errorf("doctor name is required")
	}
	if strings.TrimSpace(req.HospitalLocation) == "" {
		return nil, fmt.Errorf("hospital location is required")
	}
	if strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("date is required")
	}

	patients, err := listimport.Parse(req.File)
	if err != nil {
		return nil, err
	}

	list := &domain.TheaterList{
		ListID: uuid.NewString(),
		Info: domain.TheaterListInfo{
			DoctorName:       strings.TrimSpace(req.DoctorName),
			HospitalLocation: strings.TrimSpace(req.HospitalLocation),
			Date:             req.Date,
		},
		Patients: patients,
	}
	if err := s.lists.CreateList(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to store theater list: %w", err)
	}

	if err := s.rememberDirectoryEntries(ctx, list.Info); err != nil {
		// The list is already stored; a directory hiccup is not fatal.
		s.logger.Warn("Failed to update directory from import", zap.Error(err))
	}

	s.logger.Info("Imported theater list",
		zap.String("list_id", list.ListID),
		zap.String("doctor", list.Info.DoctorName),
		zap.Int("patients", len(list.Patients)),
	)
	return list, nil
}

func (s *ListService) rememberDirectoryEntries(ctx context.Context, info domain.TheaterListInfo) error {
	doctors, err := s.directory.ListDoctors(ctx)
	if err != nil {
		return err
	}
	known := false
	for _, d := range doctors {
		if d.Name == info.DoctorName {
			known = true
			break
		}
	}
	if !known {
		d := domain.Doctor{DoctorID: uuid.NewString(), Name: info.DoctorName}
		if err := s.directory.AddDoctor(ctx, d); err != nil {
			return err
		}
	}

	hospitals, err := s.directory.ListHospitals(ctx)
	if err != nil {
		return err
	}
	known = false
	for _, h := range hospitals {
		if h.Name == info.HospitalLocation {
			known = true
			break
		}
	}
	if !known {
		h := domain.Hospital{HospitalID: uuid.NewString(), Name: info.HospitalLocation}
		if err := s.directory.AddHospital(ctx, h); err != nil {
			return err
		}
	}
	return nil
}

func (s *ListService) ListLists(ctx context.Context) ([]domain.TheaterList, error) {
	return s.lists.ListLists(ctx)
}

func (s *ListService) GetList(ctx context.Context, listID string) (*domain.TheaterList, error) {
	return s.lists.GetList(ctx, listID)
}

func (s *ListService) DeleteList(ctx context.Context, listID string) error {
	if err := s.lists.DeleteList(ctx, listID); err != nil {
		return err
	}
	s.logger.Info("Deleted theater list", zap.String("list_id", listID))
	return nil
}

// UpdatePatient replaces one patient record on a list, addressed by ID
// number. The first matching record wins when the roster carries
// duplicates.
func (s *ListService) UpdatePatient(ctx context.Context, listID string, idNumber string, patient domain.Patient) (*domain.TheaterList, error) {
	list, err := s.lists.GetList(ctx, listID)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range list.Patients {
		if list.Patients[i].IDNumber == idNumber {
			patient.EnsureNotes()
			list.Patients[i] = patient
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("no patient with id number %q: %w", idNumber, repository.ErrNotFound)
	}
	if err := s.lists.SaveList(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to save patient update: %w", err)
	}
	return list, nil
}

// QuickExportResponse is a ready-to-download quick data workbook.
type QuickExportResponse struct {
	FileName string
	Data     []byte
}

// QuickExport renders the list's quick data spreadsheet.
func (s *ListService) QuickExport(ctx context.Context, listID string) (*QuickExportResponse, error) {
	list, err := s.lists.GetList(ctx, listID)
	if err != nil {
		return nil, err
	}
	data, err := quickdata.EncodeToBytes(list.Patients, list.Info)
	if err != nil {
		return nil, fmt.Errorf("failed to build quick data workbook: %w", err)
	}
	return &QuickExportResponse{
		FileName: quickdata.ExportFileName(list.Info),
		Data:     data,
	}, nil
}

// QuickImport merges a filled-in quick data workbook back onto the list.
// Patients are matched by exact name; sheet blocks with no counterpart on
// the list are dropped, and unmatched patients keep their current data.
func (s *ListService) QuickImport(ctx context.Context, listID string, file io.Reader) (*domain.TheaterList, error) {
	list, err := s.lists.GetList(ctx, listID)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse spreadsheet: %w", err)
	}
	defer f.Close()

	updates, err := quickdata.Decode(f)
	if err != nil {
		if errors.Is(err, quickdata.ErrEmptyDocument) {
			// Nothing to merge; the list stays as it is.
			s.logger.Warn("Quick data workbook has no patient blocks",
				zap.String("list_id", listID))
			return list, nil
		}
		return nil, err
	}

	merged := 0
	for _, u := range updates {
		for i := range list.Patients {
			if list.Patients[i].Name == u.Name {
				u.Apply(&list.Patients[i])
				merged++
				break
			}
		}
	}
	if err := s.lists.SaveList(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to save merged list: %w", err)
	}

	s.logger.Info("Merged quick data into theater list",
		zap.String("list_id", listID),
		zap.Int("blocks", len(updates)),
		zap.Int("merged", merged),
	)
	return list, nil
}
