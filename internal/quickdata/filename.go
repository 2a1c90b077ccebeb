package quickdata

import (
	"fmt"
	"strings"

	"theaterlist/internal/domain"
)

// ExportFileName builds the quick-data export name:
// "{doctorSurname}, {hospitalFirstWord}, incomplete.xlsx".
// Surname is the last space-separated token of the doctor name (or the whole
// name when it is a single token); hospital contributes its first word.
func ExportFileName(info domain.TheaterListInfo) string {
	doctorParts := strings.Fields(info.DoctorName)
	surname := info.DoctorName
	if len(doctorParts) > 0 {
		surname = doctorParts[len(doctorParts)-1]
	}
	hospitalFirst := ""
	if parts := strings.Fields(info.HospitalLocation); len(parts) > 0 {
		hospitalFirst = parts[0]
	}
	return fmt.Sprintf("%s, %s, incomplete.xlsx", surname, hospitalFirst)
}
