package document

import (
	"theaterlist/internal/domain"
)

// Page geometry shared by both document types, in points.
const (
	leftMargin  = 40.0
	lineSpacing = 12.0

	titleFontSize  = 22.0
	titleBaselineY = 40.0
	blocksStartY   = 80.0

	headerTitleSize    = 16.0
	headerTitleAdvance = 18.0
	headerLineSize     = 9.0
	headerLineAdvance  = 11.0

	stickerFontSize   = 10.0
	stickerLabelWidth = 100.0
)

// Practice identity printed at the top of every document.
var practiceHeader = struct {
	Title string
	Lines [4]string
}{
	Title: "Dr Riaan Combrinck",
	Lines: [4]string{
		"GP Anaesthetist",
		"MBChB (Pret 2016), DA (SA 2020), ATLS, ACLS, PALS, BLS",
		"MP: 0847003, PP: 0920479",
		"Email: drcombrinck@healthcollectiveheal.com",
	},
}

// drawTitle centers the document title on the page.
func drawTitle(c Canvas, title string) {
	c.SetFont(true, titleFontSize)
	x := (c.PageWidth() - c.StringWidth(title)) / 2
	c.Text(x, titleBaselineY, title)
}

// drawDoctorHeader renders the static practice block and returns the ending
// vertical cursor.
func drawDoctorHeader(c Canvas, y float64) float64 {
	c.SetFont(true, headerTitleSize)
	c.Text(leftMargin, y, practiceHeader.Title)
	y += headerTitleAdvance

	c.SetFont(false, headerLineSize)
	for _, line := range practiceHeader.Lines {
		c.Text(leftMargin, y, line)
		y += headerLineAdvance
	}
	return y
}

// drawPatientSticker renders the bordered identity card to the right of the
// page midpoint. Each wrapped value advances the cursor by its line count;
// the border height is only known once every field is down, so the rectangle
// is drawn last from the recorded start cursor.
func drawPatientSticker(c Canvas, p domain.Patient, y float64) float64 {
	pageWidth := c.PageWidth()
	stickerX := pageWidth/2 + 20
	valueWidth := pageWidth - stickerX - stickerLabelWidth - 10

	fields := []struct {
		label string
		value string
	}{
		{"Patient Name:", p.Name},
		{"Tel Number:", p.Telephone},
		{"Email:", p.Email},
		{"ID:", p.IDNumber},
		{"Date of Birth:", p.DOB},
		{"Age:", p.Age},
		{"Medical Aid:", p.MedicalAidName},
		{"Medical Aid No:", p.MedicalAidNumber},
		{"Dependant Code:", p.DependantNumber},
		{"Gender:", p.Gender},
		{"Auth Number:", p.AuthNumber},
		{"Procedure:", p.ProcedureSummary},
	}

	startY := y
	for _, f := range fields {
		c.SetFont(true, stickerFontSize)
		c.Text(stickerX, y, f.label)

		c.SetFont(false, stickerFontSize)
		value := f.value
		if value == "" {
			value = "N/A"
		}
		lines := c.SplitText(value, valueWidth)
		for i, line := range lines {
			c.Text(stickerX+stickerLabelWidth, y+float64(i)*lineSpacing, line)
		}
		y += float64(len(lines)) * lineSpacing
	}

	height := y - startY + lineSpacing
	c.Rect(stickerX-10, startY-lineSpacing, pageWidth-stickerX, height)
	return y
}
