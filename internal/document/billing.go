package document

import (
	"fmt"
	"strings"
	"time"

	"theaterlist/internal/clinical"
	"theaterlist/internal/domain"
)

// Billing table geometry, in points.
const (
	billingLabelColWidth = 120.0
	billingRowHeight     = 25.0
	billingTextOffsetY   = 16.0
)

type billingRow struct {
	label      string
	value      []Run
	labelColor [3]int
}

// renderBillingSheet produces the one-page billing sheet PDF for a patient.
func renderBillingSheet(info domain.TheaterListInfo, doctors []domain.Doctor, p domain.Patient) ([]byte, error) {
	c := newPDFCanvas()
	buildBillingSheet(c, info, doctors, p)
	return c.output()
}

// buildBillingSheet lays the full page onto the canvas: title, practice
// header, patient sticker, then the fixed 8-row billing table.
func buildBillingSheet(c Canvas, info domain.TheaterListInfo, doctors []domain.Doctor, p domain.Patient) {
	drawTitle(c, "Billing sheet")
	headerEndY := drawDoctorHeader(c, blocksStartY)
	stickerEndY := drawPatientSticker(c, p, blocksStartY)

	tableY := headerEndY
	if stickerEndY > tableY {
		tableY = stickerEndY
	}
	tableY += 30

	pageWidth := c.PageWidth()
	tableX := leftMargin
	tableWidth := pageWidth - leftMargin*2
	valueColWidth := tableWidth - billingLabelColWidth

	for _, row := range billingRows(info, doctors, p) {
		c.SetTextColor(0, 0, 0)
		c.Rect(tableX, tableY, tableWidth, billingRowHeight)
		c.Line(tableX+billingLabelColWidth, tableY, tableX+billingLabelColWidth, tableY+billingRowHeight)

		c.SetFont(true, stickerFontSize)
		c.SetTextColor(row.labelColor[0], row.labelColor[1], row.labelColor[2])
		c.Text(tableX+5, tableY+billingTextOffsetY, row.label)
		c.SetTextColor(0, 0, 0)

		valueX := tableX + billingLabelColWidth + 5
		if len(row.value) == 1 && !row.value[0].Bold {
			// Plain values wrap within the value column.
			c.SetFont(false, stickerFontSize)
			lines := c.SplitText(row.value[0].Text, valueColWidth-10)
			y := tableY + billingTextOffsetY
			if len(lines) > 1 {
				y -= 5
			}
			for i, line := range lines {
				c.Text(valueX, y+float64(i)*lineSpacing, line)
			}
		} else {
			drawRuns(c, valueX, tableY+billingTextOffsetY, stickerFontSize, row.value)
		}

		tableY += billingRowHeight
	}
}

// billingRows derives the 8 fixed rows. The last row's label is blue to flag
// the anaesthetic codes as practice-side rather than patient-derived.
func billingRows(info domain.TheaterListInfo, doctors []domain.Doctor, p domain.Patient) []billingRow {
	bmi := clinical.BMI(p.Weight, p.Height)
	mainCode := clinical.MainProcedureCode(orNA(p.ProcedureCodes))
	staticCodes := clinical.StaticBillingCodes(bmi, p.Age)

	black := [3]int{0, 0, 0}
	blue := [3]int{0, 0, 255}
	return []billingRow{
		{"Date", []Run{normal(longListDate(info.Date))}, black},
		{"Hospital Name", []Run{normal(info.HospitalLocation)}, black},
		{"Surgeon", []Run{normal(surgeonLine(info.DoctorName, doctors))}, black},
		{"ICD 10 Codes", []Run{normal(orNA(p.ICD10Codes))}, black},
		{"Procedure Codes", []Run{normal(fmt.Sprintf("Main code: %s            All codes: (%s)", mainCode, orNA(p.ProcedureCodes)))}, black},
		{"Time", []Run{bold("In:"), normal(" " + orNA(p.InTime) + "  "), bold("Out:"), normal(" " + orNA(p.OutTime))}, black},
		{"BMI", []Run{bold("W:"), normal(" " + orNA(p.Weight) + "kg  "), bold("H:"), normal(" " + orNA(p.Height) + "m  "), bold("BMI:"), normal(" " + bmi)}, black},
		{"Procedure Codes", []Run{normal(strings.Join(staticCodes, ", "))}, blue},
	}
}

// surgeonLine appends the practice number when the doctor is in the
// directory, otherwise falls back to the plain name.
func surgeonLine(doctorName string, doctors []domain.Doctor) string {
	for _, d := range doctors {
		if d.Name == doctorName {
			return fmt.Sprintf("%s (%s)", d.Name, d.PracticeNumber)
		}
	}
	return doctorName
}

// longListDate renders the ISO list date with the weekday spelled out,
// e.g. "Tuesday, 1 September 2026"; an unparseable value prints as stored.
func longListDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("Monday, 2 January 2006")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
