package quickdata

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"theaterlist/internal/domain"
)

func testInfo() domain.TheaterListInfo {
	return domain.TheaterListInfo{
		DoctorName:       "Dr Riaan Combrinck",
		HospitalLocation: "Harbour Bay Advanced Surgical Centre",
		Date:             "2026-09-01",
	}
}

func fullPatient(name string) domain.Patient {
	return domain.Patient{
		Name:             name,
		Age:              "64",
		ProcedureSummary: "L1-S1 RF",
		InTime:           "08:15",
		OutTime:          "09:05",
		Weight:           "82.5",
		Height:           "1.78",
		SedationType:     domain.SedationDeep,
		TCI:              "2.4",
		Ketamine:         "20mg",
		Notes:            []string{"n1", "n2", "n3", "n4", "n5", "n6", "n7"},
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	patients := []domain.Patient{fullPatient("Mr A One"), fullPatient("Mrs B Two")}
	patients[1].SedationType = domain.SedationAwake
	patients[1].Notes = []string{"only note", "", "", "", "", "", ""}

	f, err := Encode(patients, testInfo())
	require.NoError(t, err)
	defer f.Close()

	updates, err := Decode(f)
	require.NoError(t, err)
	require.Len(t, updates, 2)

	for i, u := range updates {
		p := patients[i]
		require.Equal(t, p.Name, u.Name)
		require.Equal(t, p.Notes, u.Notes)
		require.Equal(t, p.ProcedureSummary, u.ProcedureSummary)
		require.Equal(t, p.Age, u.Age)
		require.Equal(t, p.InTime, u.InTime)
		require.Equal(t, p.OutTime, u.OutTime)
		require.Equal(t, p.Weight, u.Weight)
		require.Equal(t, p.Height, u.Height)
		require.Equal(t, p.SedationType, u.SedationType)
		require.Equal(t, p.TCI, u.TCI)
		require.Equal(t, p.Ketamine, u.Ketamine)
	}
}

func TestEncode_CellContract(t *testing.T) {
	f, err := Encode([]domain.Patient{fullPatient("Mr A One"), fullPatient("Mrs B Two")}, testInfo())
	require.NoError(t, err)
	defer f.Close()

	// Block 0 starts at row 1, block 1 at row 13.
	get := func(cell string) string {
		v, err := f.GetCellValue(SheetName, cell)
		require.NoError(t, err)
		return v
	}
	require.Equal(t, "Mr A One", get("M1"))
	require.Equal(t, "n1", get("M2"))
	require.Equal(t, "n7", get("M8"))
	require.Equal(t, "L1-S1 RF", get("M9"))
	require.Equal(t, "64", get("N1"))
	require.Equal(t, "08:15", get("K4"))
	require.Equal(t, "09:05", get("K5"))
	require.Equal(t, "82.5", get("K6"))
	require.Equal(t, "1.78", get("K7"))
	require.Equal(t, "Deep", get("K8"))
	require.Equal(t, "2.4", get("K9"))
	require.Equal(t, "20mg", get("N11"))
	require.Equal(t, "Dr Riaan Combrinck", get("P2"))
	require.Equal(t, "Harbour Bay Advanced Surgical Centre", get("P4"))

	require.Equal(t, "Mrs B Two", get("M13"))
	require.Equal(t, "Dr Riaan Combrinck", get("P14"))
}

func TestEncode_AbsentValuesWrittenAsEmptyText(t *testing.T) {
	p := domain.Patient{Name: "Sparse"}
	f, err := Encode([]domain.Patient{p}, testInfo())
	require.NoError(t, err)
	defer f.Close()

	typ, err := f.GetCellType(SheetName, "K6")
	require.NoError(t, err)
	require.NotEqual(t, excelize.CellTypeNumber, typ)

	v, err := f.GetCellValue(SheetName, "K6")
	require.NoError(t, err)
	require.Equal(t, "", v)

	// Declared range still reaches row 100 for a one-block sheet.
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 100)
}

func TestDecode_EmptyFirstBlock(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet(SheetName)
	require.NoError(t, err)
	f.DeleteSheet("Sheet1")

	_, err = Decode(f)
	require.ErrorIs(t, err, ErrEmptyDocument)
}

func TestDecode_StopsAtSentinelBlock(t *testing.T) {
	// Name only in block 0; block 1 has data but no name and must be ignored.
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet(SheetName)
	require.NoError(t, err)
	f.DeleteSheet("Sheet1")
	require.NoError(t, f.SetCellStr(SheetName, "M1", "Mr Only"))
	require.NoError(t, f.SetCellStr(SheetName, "K18", "75")) // weight cell of block 1

	updates, err := Decode(f)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	require.Equal(t, "Mr Only", updates[0].Name)

	// Missing cells materialize as empty strings, notes as exactly 7 slots.
	require.Equal(t, []string{"", "", "", "", "", "", ""}, updates[0].Notes)
	require.Equal(t, "", updates[0].Weight)
}

func TestDecode_WhitespaceNameIsLiveBlock(t *testing.T) {
	// Only a truly empty name cell terminates the scan.
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet(SheetName)
	require.NoError(t, err)
	f.DeleteSheet("Sheet1")
	require.NoError(t, f.SetCellStr(SheetName, "M1", " "))
	require.NoError(t, f.SetCellStr(SheetName, "M13", "Mr B"))

	updates, err := Decode(f)
	require.NoError(t, err)
	require.Len(t, updates, 2)
	require.Equal(t, " ", updates[0].Name)
	require.Equal(t, "Mr B", updates[1].Name)
}

func TestDecode_SedationDefaultsToAwake(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet(SheetName)
	require.NoError(t, err)
	f.DeleteSheet("Sheet1")
	require.NoError(t, f.SetCellStr(SheetName, "M1", "Mr A"))
	require.NoError(t, f.SetCellStr(SheetName, "M13", "Mr B"))
	require.NoError(t, f.SetCellStr(SheetName, "K20", "deep")) // wrong case, block 1

	updates, err := Decode(f)
	require.NoError(t, err)
	require.Len(t, updates, 2)
	require.Equal(t, domain.SedationAwake, updates[0].SedationType)
	require.Equal(t, domain.SedationAwake, updates[1].SedationType)
}

func TestExportFileName(t *testing.T) {
	require.Equal(t, "Combrinck, Harbour, incomplete.xlsx", ExportFileName(testInfo()))

	single := domain.TheaterListInfo{DoctorName: "House", HospitalLocation: "Plainsboro"}
	require.Equal(t, "House, Plainsboro, incomplete.xlsx", ExportFileName(single))
}
