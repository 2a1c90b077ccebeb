// Package clinical derives the computed values printed on billing sheets and
// sedation records: BMI, theater time, and billing code selection.
// Pure functions, no I/O.
package clinical

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// NotAvailable is printed wherever a derived value cannot be computed.
const NotAvailable = "N/A"

var timePattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// BMI computes weight/height² to one decimal place, ties rounding away
// from zero. Returns NotAvailable unless both inputs parse to positive
// numbers.
func BMI(weightKg, heightM string) string {
	w, errW := strconv.ParseFloat(strings.TrimSpace(weightKg), 64)
	h, errH := strconv.ParseFloat(strings.TrimSpace(heightM), 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f", math.Round(w/(h*h)*10)/10)
}

// ElapsedTime computes out-in in minutes, formatted "{hours}h {minutes}m".
// A negative difference wraps by 24h: the out time is assumed to be later the
// same day or the next morning. Inputs must match H:MM or HH:MM, else
// NotAvailable.
func ElapsedTime(inTime, outTime string) string {
	in, ok := parseMinutes(inTime)
	if !ok {
		return NotAvailable
	}
	out, ok := parseMinutes(outTime)
	if !ok {
		return NotAvailable
	}
	diff := out - in
	if diff < 0 {
		diff += 24 * 60
	}
	return fmt.Sprintf("%dh %dm", diff/60, diff%60)
}

func parseMinutes(s string) (int, bool) {
	if !timePattern.MatchString(s) {
		return 0, false
	}
	parts := strings.SplitN(s, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m, true
}

// MainProcedureCode selects the main billing code from the free-text
// procedure codes field. Check order is fixed: 2927 beats 2793; anything else
// falls back to 2313.
func MainProcedureCode(procedureCodes string) string {
	if strings.Contains(procedureCodes, "2927") {
		return "2927"
	}
	if strings.Contains(procedureCodes, "2793") {
		return "2793"
	}
	return "2313"
}

// StaticBillingCodes returns the fixed anaesthetic billing codes, extended
// with the obesity modifier (BMI > 35) and the age modifier (age > 70).
// Append order is fixed; callers rely on it when joining for print.
func StaticBillingCodes(bmi, age string) []string {
	codes := []string{"0151", "0023", "0032"}
	if v, err := strconv.ParseFloat(bmi, 64); err == nil && v > 35 {
		codes = append(codes, "0018")
	}
	if v, err := strconv.Atoi(strings.TrimSpace(age)); err == nil && v > 70 {
		codes = append(codes, "0043")
	}
	return codes
}
