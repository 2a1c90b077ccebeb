package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"theaterlist/internal/domain"
)

// recordingCanvas captures draw calls so layout can be asserted without a
// PDF surface. Width metrics are deterministic: half the font size per rune.
type recordingCanvas struct {
	fontBold  bool
	fontSize  float64
	color     [3]int
	drawColor [3]int

	texts []recordedText
	rects []recordedRect
	lines []recordedLine
}

type recordedText struct {
	x, y  float64
	s     string
	bold  bool
	size  float64
	color [3]int
}

type recordedRect struct{ x, y, w, h float64 }

type recordedLine struct {
	x1, y1, x2, y2 float64
	color          [3]int
}

func (c *recordingCanvas) PageWidth() float64 { return 595.28 } // A4 portrait, pt

func (c *recordingCanvas) SetFont(bold bool, size float64) {
	c.fontBold = bold
	c.fontSize = size
}

func (c *recordingCanvas) SetTextColor(r, g, b int) { c.color = [3]int{r, g, b} }

func (c *recordingCanvas) SetDrawColor(r, g, b int) { c.drawColor = [3]int{r, g, b} }

func (c *recordingCanvas) Text(x, y float64, s string) {
	c.texts = append(c.texts, recordedText{x, y, s, c.fontBold, c.fontSize, c.color})
}

func (c *recordingCanvas) StringWidth(s string) float64 {
	return float64(len([]rune(s))) * c.fontSize / 2
}

func (c *recordingCanvas) SplitText(s string, width float64) []string {
	if s == "" || c.StringWidth(s) <= width {
		return []string{s}
	}
	perLine := int(width / (c.fontSize / 2))
	if perLine < 1 {
		perLine = 1
	}
	runes := []rune(s)
	var out []string
	for len(runes) > 0 {
		n := perLine
		if n > len(runes) {
			n = len(runes)
		}
		out = append(out, string(runes[:n]))
		runes = runes[n:]
	}
	return out
}

func (c *recordingCanvas) Rect(x, y, w, h float64) {
	c.rects = append(c.rects, recordedRect{x, y, w, h})
}

func (c *recordingCanvas) Line(x1, y1, x2, y2 float64) {
	c.lines = append(c.lines, recordedLine{x1, y1, x2, y2, c.drawColor})
}

func (c *recordingCanvas) findText(substr string) *recordedText {
	for i := range c.texts {
		if strings.Contains(c.texts[i].s, substr) {
			return &c.texts[i]
		}
	}
	return nil
}

func docPatient() domain.Patient {
	p := domain.Patient{
		Name:             "Mr A One",
		Telephone:        "0821234567",
		DOB:              "12/05/1980",
		Email:            "a@x.co.za",
		IDNumber:         "8005125000087",
		Age:              "46",
		MedicalAidName:   "Discovery",
		MedicalAidNumber: "123456",
		DependantNumber:  "01",
		Gender:           "M",
		AuthNumber:       "AUTH1",
		ICD10Codes:       "M54.5",
		ProcedureCodes:   "2802, 2927, 0661",
		ProcedureSummary: "L1-S1 RF",
		Weight:           "82.5",
		Height:           "1.78",
		InTime:           "08:15",
		OutTime:          "09:05",
		TCI:              "2.4",
		Ketamine:         "20mg",
		SedationType:     domain.SedationDeep,
		Notes:            []string{"first note", "", "third note", "", "", "", ""},
	}
	return p
}

func docInfo() domain.TheaterListInfo {
	return domain.TheaterListInfo{
		DoctorName:       "Dr Riaan Combrinck",
		HospitalLocation: "Harbour Bay Advanced Surgical Centre",
		Date:             "2026-09-01",
	}
}

func docDirectory() []domain.Doctor {
	return []domain.Doctor{
		{DoctorID: "d1", Name: "Dr Riaan Combrinck", PracticeNumber: "PP 0825557"},
	}
}

func TestDrawDoctorHeader_CursorAdvance(t *testing.T) {
	c := &recordingCanvas{}
	end := drawDoctorHeader(c, blocksStartY)

	// Bold title line plus four normal lines.
	require.Equal(t, blocksStartY+headerTitleAdvance+4*headerLineAdvance, end)
	require.Len(t, c.texts, 5)
	require.True(t, c.texts[0].bold)
	require.Equal(t, headerTitleSize, c.texts[0].size)
	for _, line := range c.texts[1:] {
		require.False(t, line.bold)
		require.Equal(t, headerLineSize, line.size)
	}
}

func TestDrawPatientSticker_BorderFromCursor(t *testing.T) {
	c := &recordingCanvas{}
	end := drawPatientSticker(c, docPatient(), blocksStartY)

	// 12 single-line fields advance one line each for this patient.
	require.Equal(t, blocksStartY+12*lineSpacing, end)

	require.Len(t, c.rects, 1)
	border := c.rects[0]
	require.Equal(t, blocksStartY-lineSpacing, border.y)
	require.Equal(t, end-blocksStartY+lineSpacing, border.h)

	// Sticker sits right of the page midpoint.
	require.Greater(t, border.x, c.PageWidth()/2)
}

func TestDrawPatientSticker_WrappedValueAdvancesCursor(t *testing.T) {
	p := docPatient()
	p.ProcedureSummary = strings.Repeat("L1-S1 RF and DRG and blocks ", 6)

	c := &recordingCanvas{}
	end := drawPatientSticker(c, p, blocksStartY)
	require.Greater(t, end, blocksStartY+12*lineSpacing)
}

func TestDrawPatientSticker_EmptyValueRendersNA(t *testing.T) {
	p := docPatient()
	p.Email = ""

	c := &recordingCanvas{}
	drawPatientSticker(c, p, blocksStartY)

	label := c.findText("Email:")
	require.NotNil(t, label)
	na := 0
	for _, tx := range c.texts {
		if tx.s == "N/A" {
			na++
		}
	}
	require.Equal(t, 1, na)
}

func TestBuildBillingSheet_TableShape(t *testing.T) {
	c := &recordingCanvas{}
	buildBillingSheet(c, docInfo(), docDirectory(), docPatient())

	// One sticker border plus 8 row rectangles.
	require.Len(t, c.rects, 9)
	rows := c.rects[1:]
	for i, r := range rows {
		require.Equal(t, leftMargin, r.x)
		require.Equal(t, billingRowHeight, r.h)
		if i > 0 {
			require.Equal(t, rows[i-1].y+billingRowHeight, r.y)
		}
	}

	// Every row has its label/value divider.
	require.Len(t, c.lines, 8)
	for _, l := range c.lines {
		require.Equal(t, leftMargin+billingLabelColWidth, l.x1)
		require.Equal(t, l.x1, l.x2)
	}
}

func TestBuildBillingSheet_DerivedValues(t *testing.T) {
	c := &recordingCanvas{}
	buildBillingSheet(c, docInfo(), docDirectory(), docPatient())

	require.NotNil(t, c.findText("Main code: 2927"))
	require.NotNil(t, c.findText("All codes: (2802, 2927, 0661)"))
	require.NotNil(t, c.findText("Dr Riaan Combrinck (PP 0825557)"))
	require.NotNil(t, c.findText("Tuesday, 1 September 2026"))
	require.NotNil(t, c.findText("0151, 0023, 0032"))
	require.NotNil(t, c.findText(" 26.0")) // BMI for 82.5kg / 1.78m
}

func TestBuildBillingSheet_UnknownSurgeonFallsBack(t *testing.T) {
	c := &recordingCanvas{}
	info := docInfo()
	info.DoctorName = "Dr Nobody"
	buildBillingSheet(c, info, docDirectory(), docPatient())

	require.NotNil(t, c.findText("Dr Nobody"))
	require.Nil(t, c.findText("Dr Nobody ("))
}

func TestBuildBillingSheet_StaticCodesLabelIsFlagged(t *testing.T) {
	c := &recordingCanvas{}
	buildBillingSheet(c, docInfo(), docDirectory(), docPatient())

	var labels []recordedText
	for _, tx := range c.texts {
		if tx.s == "Procedure Codes" {
			labels = append(labels, tx)
		}
	}
	require.Len(t, labels, 2)
	require.Equal(t, [3]int{0, 0, 0}, labels[0].color)
	require.Equal(t, [3]int{0, 0, 255}, labels[1].color)
}

func TestBuildBillingSheet_MixedWeightTimeRow(t *testing.T) {
	c := &recordingCanvas{}
	buildBillingSheet(c, docInfo(), docDirectory(), docPatient())

	in := c.findText("In:")
	out := c.findText("Out:")
	val := c.findText(" 08:15  ")
	require.NotNil(t, in)
	require.NotNil(t, out)
	require.NotNil(t, val)
	require.True(t, in.bold)
	require.True(t, out.bold)
	// Separator spaces travel with the regular-weight value fragments.
	require.False(t, val.bold)
	// Same baseline, fragments advance left to right.
	require.Equal(t, in.y, val.y)
	require.Greater(t, val.x, in.x)
	require.Greater(t, out.x, val.x)
}

func TestBuildSedationRecord_Content(t *testing.T) {
	c := &recordingCanvas{}
	buildSedationRecord(c, docInfo(), docDirectory(), docPatient())

	require.NotNil(t, c.findText("Sedation Record"))
	require.NotNil(t, c.findText("Total time:"))
	require.NotNil(t, c.findText("0h 50m"))
	require.NotNil(t, c.findText("82.5 kg"))
	require.NotNil(t, c.findText("1.78 m"))

	// Only the two non-empty notes appear, bulleted.
	require.NotNil(t, c.findText("- first note"))
	require.NotNil(t, c.findText("- third note"))
	bullets := 0
	for _, tx := range c.texts {
		if strings.HasPrefix(tx.s, "- ") {
			bullets++
		}
	}
	require.Equal(t, 2, bullets)

	// Deep sedation picks the deep first management item.
	require.NotNil(t, c.findText("Sedation with Propofol 10mg/ml and Rapifen"))
}

func TestBuildSedationRecord_CaseBlockWrapAndDivider(t *testing.T) {
	info := docInfo()
	info.HospitalLocation = strings.Repeat("Q", 100)

	c := &recordingCanvas{}
	buildSedationRecord(c, info, docDirectory(), docPatient())

	// The long hospital value wraps onto a second line at the value column.
	var hospLines []recordedText
	for _, tx := range c.texts {
		if tx.x == leftMargin+80 && tx.s != "" && strings.Contains(info.HospitalLocation, tx.s) {
			hospLines = append(hospLines, tx)
		}
	}
	require.Len(t, hospLines, 2)
	require.Equal(t, hospLines[0].y+lineSpacing+2, hospLines[1].y)

	// A light-gray rule closes the case block, spanning the margins.
	var divider *recordedLine
	for i := range c.lines {
		if c.lines[i].color == [3]int{180, 180, 180} {
			divider = &c.lines[i]
		}
	}
	require.NotNil(t, divider)
	require.Equal(t, leftMargin, divider.x1)
	require.Equal(t, c.PageWidth()-leftMargin, divider.x2)
	require.Equal(t, divider.y1, divider.y2)
}

func TestBuildSedationRecord_AwakeFirstItem(t *testing.T) {
	p := docPatient()
	p.SedationType = domain.SedationAwake

	c := &recordingCanvas{}
	buildSedationRecord(c, docInfo(), docDirectory(), p)

	require.NotNil(t, c.findText("Awake sedation with Propofol"))
	require.Nil(t, c.findText("Infusion at 2 - 2.5ug/ml EC"))
}

func TestManagementItems_Count(t *testing.T) {
	// Items 1..11 plus the two 4a/4b sub-lines.
	require.Len(t, managementItems(domain.SedationDeep), 13)
	require.Len(t, managementItems(domain.SedationAwake), 13)
}
