// Package document renders the two printable clinical documents for a
// theater list: the billing sheet and the sedation record. Layout code draws
// onto a Canvas so it can be exercised in tests without a live PDF surface.
package document

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Canvas is the drawing surface a page builder writes to. Coordinates are in
// points with the origin at the top-left; Text positions the baseline, as PDF
// does.
type Canvas interface {
	PageWidth() float64
	SetFont(bold bool, size float64)
	SetTextColor(r, g, b int)
	SetDrawColor(r, g, b int)
	Text(x, y float64, s string)
	StringWidth(s string) float64
	SplitText(s string, width float64) []string
	Rect(x, y, w, h float64)
	Line(x1, y1, x2, y2 float64)
}

// pdfCanvas draws onto a single-page A4 portrait PDF.
type pdfCanvas struct {
	pdf *fpdf.Fpdf
}

func newPDFCanvas() *pdfCanvas {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	return &pdfCanvas{pdf: pdf}
}

func (c *pdfCanvas) PageWidth() float64 {
	w, _ := c.pdf.GetPageSize()
	return w
}

func (c *pdfCanvas) SetFont(bold bool, size float64) {
	style := ""
	if bold {
		style = "B"
	}
	c.pdf.SetFont("Helvetica", style, size)
}

func (c *pdfCanvas) SetTextColor(r, g, b int) { c.pdf.SetTextColor(r, g, b) }

func (c *pdfCanvas) SetDrawColor(r, g, b int) { c.pdf.SetDrawColor(r, g, b) }

func (c *pdfCanvas) Text(x, y float64, s string) { c.pdf.Text(x, y, s) }

func (c *pdfCanvas) StringWidth(s string) float64 { return c.pdf.GetStringWidth(s) }

func (c *pdfCanvas) SplitText(s string, width float64) []string {
	if s == "" {
		return []string{""}
	}
	return c.pdf.SplitText(s, width)
}

func (c *pdfCanvas) Rect(x, y, w, h float64) { c.pdf.Rect(x, y, w, h, "D") }

func (c *pdfCanvas) Line(x1, y1, x2, y2 float64) { c.pdf.Line(x1, y1, x2, y2) }

// output closes the document and returns the PDF bytes.
func (c *pdfCanvas) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
