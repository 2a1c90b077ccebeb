package document

// Run is one fragment of a single line of text with its own weight. Mixed
// bold/normal lines (the In/Out time row, the BMI row) are modeled as ordered
// runs instead of font-state toggling buried in draw calls.
type Run struct {
	Text string
	Bold bool
}

func normal(s string) Run { return Run{Text: s} }
func bold(s string) Run   { return Run{Text: s, Bold: true} }

// drawRuns renders the runs left to right from (x, y) at the given size and
// returns the x position after the last fragment.
func drawRuns(c Canvas, x, y, size float64, runs []Run) float64 {
	for _, r := range runs {
		c.SetFont(r.Bold, size)
		c.Text(x, y, r.Text)
		x += c.StringWidth(r.Text)
	}
	return x
}

// runsText joins the fragments, for width checks and tests.
func runsText(runs []Run) string {
	var s string
	for _, r := range runs {
		s += r.Text
	}
	return s
}
