package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"theaterlist/internal/domain"
	"theaterlist/internal/quickdata"
	"theaterlist/internal/repository"
)

func newTestListService() (*ListService, *repository.MemoryListsRepo, *repository.MemoryDirectoryRepo) {
	lists := repository.NewMemoryListsRepo()
	directory := repository.NewMemoryDirectoryRepo()
	return NewListService(lists, directory, zap.NewNop()), lists, directory
}

// buildRosterFile makes a minimal import spreadsheet: a header row followed
// by one positional row per patient.
func buildRosterFile(t *testing.T, rows [][]string) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []string{"Name", "Telephone", "DOB", "Email", "ID", "Age", "Aid", "Aid No", "Dep", "Gender", "Auth", "ICD10", "Codes", "Procedure"}
	for c, v := range header {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellStr(sheet, cell, v))
	}
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellStr(sheet, cell, v))
		}
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

func storedList(t *testing.T) *domain.TheaterList {
	t.Helper()
	p1 := domain.Patient{Name: "Mr A One", IDNumber: "8001015009087", Weight: "80"}
	p1.EnsureNotes()
	p2 := domain.Patient{Name: "Mrs B Two", IDNumber: "8203030000000"}
	p2.EnsureNotes()
	return &domain.TheaterList{
		ListID: "11111111-1111-1111-1111-111111111111",
		Info: domain.TheaterListInfo{
			DoctorName:       "Dr WA Liebenberg",
			HospitalLocation: "Harbour Bay Advanced Surgical Centre",
			Date:             "2026-09-01",
		},
		Patients: []domain.Patient{p1, p2},
	}
}

func TestImportList_CreatesListAndDirectoryEntries(t *testing.T) {
	svc, lists, directory := newTestListService()
	ctx := context.Background()

	file := buildRosterFile(t, [][]string{
		{"Mr A One", "821234567", "12/05/1980", "a@x.com", "8001015009087", "46", "Discovery", "123", "00", "M", "AUTH1", "M54.5", "2927 x 2", "L1-S1 RF"},
	})
	list, err := svc.ImportList(ctx, ImportListRequest{
		DoctorName:       "Dr New Surgeon",
		HospitalLocation: "New Day Hospital",
		Date:             "2026-09-01",
		File:             file,
	})
	require.NoError(t, err)
	require.NotEmpty(t, list.ListID)
	require.Len(t, list.Patients, 1)
	require.Equal(t, "0821234567", list.Patients[0].Telephone)
	require.Equal(t, domain.SedationDeep, list.Patients[0].SedationType)

	stored, err := lists.GetList(ctx, list.ListID)
	require.NoError(t, err)
	require.Equal(t, "Dr New Surgeon", stored.Info.DoctorName)

	doctors, err := directory.ListDoctors(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	require.Equal(t, "Dr New Surgeon", doctors[0].Name)

	hospitals, err := directory.ListHospitals(ctx)
	require.NoError(t, err)
	require.Len(t, hospitals, 1)
	require.Equal(t, "New Day Hospital", hospitals[0].Name)
}

func TestImportList_KnownDoctorNotDuplicated(t *testing.T) {
	svc, _, directory := newTestListService()
	ctx := context.Background()
	require.NoError(t, directory.AddDoctor(ctx, domain.Doctor{DoctorID: "d1", Name: "Dr WA Liebenberg", PracticeNumber: "PP 0191728"}))

	file := buildRosterFile(t, [][]string{{"Mr A One"}})
	_, err := svc.ImportList(ctx, ImportListRequest{
		DoctorName:       "Dr WA Liebenberg",
		HospitalLocation: "Hermanus Day Hospital",
		Date:             "2026-09-01",
		File:             file,
	})
	require.NoError(t, err)

	doctors, err := directory.ListDoctors(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	require.Equal(t, "PP 0191728", doctors[0].PracticeNumber)
}

func TestImportList_RequiresHeaderFields(t *testing.T) {
	svc, _, _ := newTestListService()
	_, err := svc.ImportList(context.Background(), ImportListRequest{
		DoctorName: "Dr X",
		Date:       "2026-09-01",
		File:       bytes.NewReader(nil),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "hospital location")
}

func TestUpdatePatient_ByIDNumber(t *testing.T) {
	svc, lists, _ := newTestListService()
	ctx := context.Background()
	require.NoError(t, lists.CreateList(ctx, storedList(t)))

	updated := domain.Patient{Name: "Mrs B Two", IDNumber: "8203030000000", Weight: "62.5", SedationType: domain.SedationAwake}
	list, err := svc.UpdatePatient(ctx, "11111111-1111-1111-1111-111111111111", "8203030000000", updated)
	require.NoError(t, err)
	require.Equal(t, "62.5", list.Patients[1].Weight)
	require.Len(t, list.Patients[1].Notes, domain.NoteSlots)
	// The other patient is untouched.
	require.Equal(t, "80", list.Patients[0].Weight)
}

func TestUpdatePatient_UnknownIDNumber(t *testing.T) {
	svc, lists, _ := newTestListService()
	ctx := context.Background()
	require.NoError(t, lists.CreateList(ctx, storedList(t)))

	_, err := svc.UpdatePatient(ctx, "11111111-1111-1111-1111-111111111111", "nope", domain.Patient{})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestQuickExport_FileName(t *testing.T) {
	svc, lists, _ := newTestListService()
	ctx := context.Background()
	require.NoError(t, lists.CreateList(ctx, storedList(t)))

	resp, err := svc.QuickExport(ctx, "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	require.Equal(t, "Liebenberg, Harbour, incomplete.xlsx", resp.FileName)
	require.NotEmpty(t, resp.Data)
}

func TestQuickImport_MergesByName(t *testing.T) {
	svc, lists, _ := newTestListService()
	ctx := context.Background()
	list := storedList(t)
	require.NoError(t, lists.CreateList(ctx, list))

	// A filled-in copy of the exported workbook: same names, new operative data.
	filled := list.Patients
	filled[0].Weight = "82.5"
	filled[0].InTime = "08:00"
	filled[0].OutTime = "08:50"
	filled[1].SedationType = domain.SedationAwake
	data, err := quickdata.EncodeToBytes(filled, list.Info)
	require.NoError(t, err)

	merged, err := svc.QuickImport(ctx, list.ListID, bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "82.5", merged.Patients[0].Weight)
	require.Equal(t, "08:50", merged.Patients[0].OutTime)
	require.Equal(t, domain.SedationAwake, merged.Patients[1].SedationType)

	stored, err := lists.GetList(ctx, list.ListID)
	require.NoError(t, err)
	require.Equal(t, "82.5", stored.Patients[0].Weight)
}

func TestQuickImport_EmptyWorkbookLeavesListAlone(t *testing.T) {
	svc, lists, _ := newTestListService()
	ctx := context.Background()
	list := storedList(t)
	require.NoError(t, lists.CreateList(ctx, list))

	data, err := quickdata.EncodeToBytes(nil, list.Info)
	require.NoError(t, err)

	merged, err := svc.QuickImport(ctx, list.ListID, bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "80", merged.Patients[0].Weight)
}

func TestDeleteList(t *testing.T) {
	svc, lists, _ := newTestListService()
	ctx := context.Background()
	require.NoError(t, lists.CreateList(ctx, storedList(t)))

	require.NoError(t, svc.DeleteList(ctx, "11111111-1111-1111-1111-111111111111"))
	_, err := lists.GetList(ctx, "11111111-1111-1111-1111-111111111111")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
