// Package listimport parses the full-list spreadsheet a practice receives
// from a surgeon's rooms: one header row, then one patient per row in 14
// fixed positional columns.
package listimport

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/xuri/excelize/v2"

	"theaterlist/internal/domain"
)

// ErrNoDataRows is returned when the sheet has a header but nothing under it
// (or nothing at all).
var ErrNoDataRows = errors.New("spreadsheet is empty or has no data rows")

var digitsOnly = regexp.MustCompile(`^\d+$`)

// Column positions in the import format.
const (
	colName = iota
	colTelephone
	colDOB
	colEmail
	colIDNumber
	colAge
	colMedicalAidName
	colMedicalAidNumber
	colDependantNumber
	colGender
	colAuthNumber
	colICD10Codes
	colProcedureCodes
	colProcedureSummary
)

// Parse reads the first sheet and returns fully initialised patient records.
// Read failures and workbook parse failures come back wrapped and distinct;
// the operative fields start empty with sedation defaulted to Deep and the
// full complement of empty note slots.
func Parse(r io.Reader) ([]domain.Patient, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("failed to parse spreadsheet: workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrNoDataRows
	}

	// Raw values expose date cells as Excel serial numbers, which is how we
	// tell a native date DOB apart from one typed as text.
	rawRows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	patients := make([]domain.Patient, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		var raw []string
		if i < len(rawRows) {
			raw = rawRows[i]
		}

		p := domain.Patient{
			Name:             col(row, colName),
			Telephone:        normalizeTelephone(col(row, colTelephone)),
			DOB:              normalizeDOB(col(row, colDOB), col(raw, colDOB)),
			Email:            col(row, colEmail),
			IDNumber:         col(row, colIDNumber),
			Age:              col(row, colAge),
			MedicalAidName:   col(row, colMedicalAidName),
			MedicalAidNumber: col(row, colMedicalAidNumber),
			DependantNumber:  col(row, colDependantNumber),
			Gender:           col(row, colGender),
			AuthNumber:       col(row, colAuthNumber),
			ICD10Codes:       col(row, colICD10Codes),
			ProcedureCodes:   col(row, colProcedureCodes),
			ProcedureSummary: col(row, colProcedureSummary),
			SedationType:     domain.SedationDeep,
		}
		p.EnsureNotes()
		patients = append(patients, p)
	}
	return patients, nil
}

func col(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// normalizeTelephone restores the leading zero that spreadsheets strip from
// numeric telephone cells.
func normalizeTelephone(tel string) string {
	if tel != "" && digitsOnly.MatchString(tel) && tel[0] != '0' {
		return "0" + tel
	}
	return tel
}

// normalizeDOB reformats native date cells to dd/mm/yyyy. A date cell's raw
// value is an Excel serial number; text DOBs pass through untouched.
func normalizeDOB(formatted, raw string) string {
	if raw == "" || raw == formatted {
		return formatted
	}
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return formatted
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil || t.Year() < 1900 || t.Year() > 2100 {
		return formatted
	}
	return t.Format("02/01/2006")
}
