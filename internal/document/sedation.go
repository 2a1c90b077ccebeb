package document

import (
	"fmt"

	"theaterlist/internal/clinical"
	"theaterlist/internal/domain"
)

// Anaesthetic management boilerplate. The first item depends on sedation
// type; the rest is fixed practice routine.
const (
	managementDeepItem  = `1. Sedation with Propofol 10mg/ml and Rapifen 20ug/ml. Infusion at 2 - 2.5ug/ml EC with the Schneider model.`
	managementAwakeItem = `1. Awake sedation with Propofol 10mg/ml Schneider model effect site 1, Rapifen 20ug/ml Maitre model effect site TCI 60".`
)

var managementTail = []string{
	"2. Prone position on spinal cushion with attention to pressure points. Eyes moisturised with celluvisc, closed and covered with eyebar/micropore.",
	"3. Self-ventilation with nasal prongs and CO2 monitoring",
	"4. Other drugs used:",
	"    a. Cefzol 1g IVI bolus at the start of procedure",
	"    b. Ondansetron 4mg",
	"5. Post-op analgesia: Script by Pain practitioner",
	"6. Monitor: ECG, NIBP (S/D/M), SaO2, PeCO2",
	"7. Anaesthetic circuit: Circle system with IPPV available if needed",
	"8. Ventilation: SV with nasal prongs, 2l/min",
	"9. Intravenous site: Right hand, 20G, no IVI fluid",
	"10.Blood loss: None",
	"11.Intra-operative problems",
}

// renderSedationRecord produces the one-page sedation record PDF for a
// patient.
func renderSedationRecord(info domain.TheaterListInfo, doctors []domain.Doctor, p domain.Patient) ([]byte, error) {
	c := newPDFCanvas()
	buildSedationRecord(c, info, doctors, p)
	return c.output()
}

// buildSedationRecord lays the full page: title, practice header, sticker,
// the 11-row metrics block, the non-empty patient notes, and the anaesthetic
// management text.
func buildSedationRecord(c Canvas, info domain.TheaterListInfo, doctors []domain.Doctor, p domain.Patient) {
	drawTitle(c, "Sedation Record")
	headerEndY := drawDoctorHeader(c, blocksStartY)
	stickerEndY := drawPatientSticker(c, p, blocksStartY)

	y := headerEndY
	if stickerEndY > y {
		y = stickerEndY
	}
	y += 20

	// Case context ahead of the metrics.
	caseLines := []struct {
		label string
		value string
	}{
		{"Surgeon:", surgeonLine(info.DoctorName, doctors)},
		{"Hospital:", info.HospitalLocation},
		{"Date:", longListDate(info.Date)},
	}
	valueWidth := c.PageWidth() - leftMargin*2 - 80
	for _, l := range caseLines {
		c.SetFont(true, stickerFontSize)
		c.Text(leftMargin, y, l.label)
		c.SetFont(false, stickerFontSize)
		lines := c.SplitText(orNA(l.value), valueWidth)
		for i, line := range lines {
			c.Text(leftMargin+80, y+float64(i)*(lineSpacing+2), line)
		}
		y += float64(len(lines)) * (lineSpacing + 2)
	}

	y += lineSpacing / 2
	c.SetDrawColor(180, 180, 180)
	c.Line(leftMargin, y, c.PageWidth()-leftMargin, y)
	y += lineSpacing

	bmi := clinical.BMI(p.Weight, p.Height)
	totalTime := clinical.ElapsedTime(p.InTime, p.OutTime)

	metrics := []struct {
		label string
		value string
	}{
		{"DOB:", p.DOB},
		{"Age:", p.Age},
		{"Weight:", fmt.Sprintf("%s kg", orNA(p.Weight))},
		{"Height:", fmt.Sprintf("%s m", orNA(p.Height))},
		{"BMI:", bmi},
		{"Sedation type:", p.SedationType},
		{"TCI:", p.TCI},
		{"Ketamine:", p.Ketamine},
		{"In:", p.InTime},
		{"Out:", p.OutTime},
		{"Total time:", totalTime},
	}
	for _, m := range metrics {
		c.SetFont(true, stickerFontSize)
		c.Text(leftMargin, y, m.label)
		c.SetFont(false, stickerFontSize)
		c.Text(leftMargin+80, y, orNA(m.value))
		y += lineSpacing + 2
	}
	y += lineSpacing

	c.SetFont(true, stickerFontSize)
	c.Text(leftMargin, y, "Patient Notes:")
	y += lineSpacing + 2
	c.SetFont(false, stickerFontSize)
	for _, note := range p.Notes {
		if note == "" {
			continue
		}
		c.Text(leftMargin+10, y, "- "+note)
		y += lineSpacing + 2
	}
	y += lineSpacing

	c.SetFont(true, stickerFontSize)
	c.Text(leftMargin, y, fmt.Sprintf("Anaesthetic management: Sedation type: %s Average TCI: %s",
		orNA(p.SedationType), orNA(p.TCI)))
	y += lineSpacing + 4

	c.SetFont(false, headerLineSize)
	wrapWidth := c.PageWidth() - leftMargin*2
	for _, item := range managementItems(p.SedationType) {
		lines := c.SplitText(item, wrapWidth)
		for i, line := range lines {
			c.Text(leftMargin, y+float64(i)*(lineSpacing+1), line)
		}
		y += float64(len(lines)) * (lineSpacing + 1)
	}
}

// managementItems returns the 11 management items, choosing the first by
// exact equality with "Deep".
func managementItems(sedationType string) []string {
	first := managementAwakeItem
	if sedationType == domain.SedationDeep {
		first = managementDeepItem
	}
	return append([]string{first}, managementTail...)
}
