package domain

// TheaterListInfo is the list-level metadata supplied at import time.
// Immutable for the life of the list.
type TheaterListInfo struct {
	DoctorName       string `json:"doctorName"`
	HospitalLocation string `json:"hospitalLocation"`
	Date             string `json:"date"` // ISO yyyy-mm-dd
}

// TheaterList is one day's surgical roster for one doctor at one hospital.
type TheaterList struct {
	ListID   string          `json:"listId" db:"list_id"` // UUID
	Info     TheaterListInfo `json:"info"`
	Patients []Patient       `json:"patients"`
}

// Doctor is a directory entry; the practice number appears on billing sheets.
type Doctor struct {
	DoctorID       string `json:"doctorId" db:"doctor_id"` // UUID
	Name           string `json:"name" db:"name"`
	PracticeNumber string `json:"practiceNumber" db:"practice_number"`
}

// Hospital is a directory entry used for list metadata autocomplete.
type Hospital struct {
	HospitalID string `json:"hospitalId" db:"hospital_id"` // UUID
	Name       string `json:"name" db:"name"`
}
