// Package quickdata implements the fixed-layout "quick data" spreadsheet
// codec: a restricted subset of clinical fields exchanged through exact cell
// coordinates so partially completed patient data can travel outside the
// system and come back.
package quickdata

import (
	"github.com/xuri/excelize/v2"
)

// SheetName is the single tab both encode and decode use.
const SheetName = "Quick Data"

// BlockHeight is the number of consecutive rows assigned to one patient.
const BlockHeight = 12

// maxBlocks bounds the decode scan so a malformed sheet can never look
// infinite. 512 blocks is far beyond any real theater list.
const maxBlocks = 512

// cellRef addresses one field inside a patient block: 0-based column,
// row offset from the block's start row (1-based rows).
type cellRef struct {
	Col       int
	RowOffset int
}

// name resolves the excelize cell name for a block starting at startRow.
func (c cellRef) name(startRow int) (string, error) {
	return excelize.CoordinatesToCellName(c.Col+1, startRow+c.RowOffset)
}

// layout is the single source of truth for the quick-data cell contract.
// Encode and decode both read from it; changing a coordinate here changes
// both directions at once.
var layout = struct {
	Name             cellRef
	ProcedureSummary cellRef
	Age              cellRef
	InTime           cellRef
	OutTime          cellRef
	Weight           cellRef
	Height           cellRef
	SedationType     cellRef
	TCI              cellRef
	Ketamine         cellRef
	DoctorName       cellRef
	HospitalLocation cellRef
}{
	Name:             cellRef{12, 0},
	ProcedureSummary: cellRef{12, 8},
	Age:              cellRef{13, 0},
	InTime:           cellRef{10, 3},
	OutTime:          cellRef{10, 4},
	Weight:           cellRef{10, 5},
	Height:           cellRef{10, 6},
	SedationType:     cellRef{10, 7},
	TCI:              cellRef{10, 8},
	Ketamine:         cellRef{13, 10},
	DoctorName:       cellRef{15, 1},
	HospitalLocation: cellRef{15, 3},
}

// noteRef addresses note slot i (0..domain.NoteSlots-1).
func noteRef(i int) cellRef {
	return cellRef{12, 1 + i}
}

// blockStartRow returns the 1-based start row of patient block i.
func blockStartRow(patientIndex int) int {
	return 1 + BlockHeight*patientIndex
}
