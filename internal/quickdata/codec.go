package quickdata

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"theaterlist/internal/domain"
)

// ErrEmptyDocument is returned by Decode when the very first block's name
// cell is already empty. Callers treat it as a no-op import, not a crash.
var ErrEmptyDocument = errors.New("no patient blocks found in quick data sheet")

// Encode writes each patient's quick-data subset into its fixed 12-row block
// plus the list-level doctor/hospital cells, once per block. Every layout
// cell is written as text, absent values as empty string, so the receiving
// side sees a stable shape no matter how sparse the data is.
func Encode(patients []domain.Patient, info domain.TheaterListInfo) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	set := func(ref cellRef, startRow int, value string) error {
		cell, err := ref.name(startRow)
		if err != nil {
			return fmt.Errorf("failed to resolve cell: %w", err)
		}
		return f.SetCellStr(SheetName, cell, value)
	}

	lastRow := 0
	for i, p := range patients {
		startRow := blockStartRow(i)

		if err := set(layout.Name, startRow, p.Name); err != nil {
			f.Close()
			return nil, err
		}
		for n := 0; n < domain.NoteSlots; n++ {
			note := ""
			if n < len(p.Notes) {
				note = p.Notes[n]
			}
			if err := set(noteRef(n), startRow, note); err != nil {
				f.Close()
				return nil, err
			}
		}
		fields := []struct {
			ref   cellRef
			value string
		}{
			{layout.ProcedureSummary, p.ProcedureSummary},
			{layout.Age, p.Age},
			{layout.InTime, p.InTime},
			{layout.OutTime, p.OutTime},
			{layout.Weight, p.Weight},
			{layout.Height, p.Height},
			{layout.SedationType, p.SedationType},
			{layout.TCI, p.TCI},
			{layout.Ketamine, p.Ketamine},
			{layout.DoctorName, info.DoctorName},
			{layout.HospitalLocation, info.HospitalLocation},
		}
		for _, fld := range fields {
			if err := set(fld.ref, startRow, fld.value); err != nil {
				f.Close()
				return nil, err
			}
		}
		lastRow = startRow + BlockHeight - 1
	}

	// The declared usable range must cover at least A1:P100 even for short
	// lists; a blank text cell at P100 keeps the sheet dimension honest.
	if lastRow < 100 {
		if err := f.SetCellStr(SheetName, "P100", ""); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to pad sheet range: %w", err)
		}
	}

	return f, nil
}

// EncodeToBytes renders the encoded workbook to xlsx bytes.
func EncodeToBytes(patients []domain.Patient, info domain.TheaterListInfo) ([]byte, error) {
	f, err := Encode(patients, info)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode scans patient blocks from the first sheet of the workbook,
// terminating at the first block whose name cell is empty. Blocks are assumed
// contiguous; missing cells read as empty strings; notes always come back as
// exactly domain.NoteSlots entries.
//
// Sedation type decodes to Deep only on an exact "Deep" match and Awake for
// anything else, including empty cells. That asymmetry with Encode is
// long-standing interchange behavior; keep it.
func Decode(f *excelize.File) ([]domain.PatientUpdate, error) {
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	get := func(ref cellRef, startRow int) string {
		cell, err := ref.name(startRow)
		if err != nil {
			return ""
		}
		v, _ := f.GetCellValue(sheet, cell)
		return v
	}

	var updates []domain.PatientUpdate
	for i := 0; i < maxBlocks; i++ {
		startRow := blockStartRow(i)

		// A truly empty name cell ends the scan; whitespace names are live
		// blocks and are kept.
		name := get(layout.Name, startRow)
		if name == "" {
			break
		}

		notes := make([]string, domain.NoteSlots)
		for n := 0; n < domain.NoteSlots; n++ {
			notes[n] = get(noteRef(n), startRow)
		}

		sedation := domain.SedationAwake
		if get(layout.SedationType, startRow) == domain.SedationDeep {
			sedation = domain.SedationDeep
		}

		updates = append(updates, domain.PatientUpdate{
			Name:             name,
			Notes:            notes,
			ProcedureSummary: get(layout.ProcedureSummary, startRow),
			Age:              get(layout.Age, startRow),
			InTime:           get(layout.InTime, startRow),
			OutTime:          get(layout.OutTime, startRow),
			Weight:           get(layout.Weight, startRow),
			Height:           get(layout.Height, startRow),
			SedationType:     sedation,
			TCI:              get(layout.TCI, startRow),
			Ketamine:         get(layout.Ketamine, startRow),
		})
	}

	if len(updates) == 0 {
		return nil, ErrEmptyDocument
	}
	return updates, nil
}
