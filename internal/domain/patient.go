package domain

// NoteSlots is the fixed number of free-text note lines a patient carries.
const NoteSlots = 7

// Sedation types as they appear on the sedation record and in quick data.
const (
	SedationDeep  = "Deep"
	SedationAwake = "Awake"
)

// Patient is one row of a theater list.
// Identity and medical-aid fields arrive via full-list import; the operative
// fields (weight, times, sedation, notes...) are edited later or merged in
// from a quick-data spreadsheet.
type Patient struct {
	Name             string `json:"name"`
	Telephone        string `json:"telephone"`
	DOB              string `json:"dob"` // dd/mm/yyyy
	Email            string `json:"email"`
	IDNumber         string `json:"idNumber"`
	Age              string `json:"age"`
	MedicalAidName   string `json:"medicalAidName"`
	MedicalAidNumber string `json:"medicalAidNumber"`
	DependantNumber  string `json:"dependantNumber"`
	Gender           string `json:"gender"`
	AuthNumber       string `json:"authNumber"`
	ICD10Codes       string `json:"icd10Codes"`
	ProcedureCodes   string `json:"procedureCodes"`
	ProcedureSummary string `json:"procedureSummary"`

	// Operative fields
	Weight       string `json:"weight"` // decimal kg
	Height       string `json:"height"` // decimal meters
	InTime       string `json:"inTime"` // HH:MM, 24h
	OutTime      string `json:"outTime"`
	TCI          string `json:"tci"`
	Ketamine     string `json:"ketamine"`
	SedationType string `json:"sedationType"` // "Deep" or "Awake"

	Caution           bool `json:"caution"`
	PenicillinAllergy bool `json:"penicillinAllergy"`
	PreviouslyDone    bool `json:"previouslyDone"`

	// Always exactly NoteSlots entries, empty-string padded.
	Notes []string `json:"notes"`
}

// EnsureNotes pads or truncates Notes to exactly NoteSlots entries.
func (p *Patient) EnsureNotes() {
	notes := make([]string, NoteSlots)
	copy(notes, p.Notes)
	p.Notes = notes
}

// PatientUpdate is the slice of a patient record carried by a quick-data
// sheet. Name is the merge key; every other field overwrites the matching
// patient.
type PatientUpdate struct {
	Name             string   `json:"name"`
	Notes            []string `json:"notes"` // exactly NoteSlots entries
	ProcedureSummary string   `json:"procedureSummary"`
	Age              string   `json:"age"`
	InTime           string   `json:"inTime"`
	OutTime          string   `json:"outTime"`
	Weight           string   `json:"weight"`
	Height           string   `json:"height"`
	SedationType     string   `json:"sedationType"`
	TCI              string   `json:"tci"`
	Ketamine         string   `json:"ketamine"`
}

// Apply copies the update onto a patient record.
func (u *PatientUpdate) Apply(p *Patient) {
	p.Notes = append([]string(nil), u.Notes...)
	p.EnsureNotes()
	p.ProcedureSummary = u.ProcedureSummary
	p.Age = u.Age
	p.InTime = u.InTime
	p.OutTime = u.OutTime
	p.Weight = u.Weight
	p.Height = u.Height
	p.SedationType = u.SedationType
	p.TCI = u.TCI
	p.Ketamine = u.Ketamine
}
