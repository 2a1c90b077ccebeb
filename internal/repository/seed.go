package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"theaterlist/internal/domain"
)

// The practice's working set of surgeons and theaters; loaded on first
// start so a fresh deployment is immediately usable.
var seedDoctors = []domain.Doctor{
	{Name: "Dr Riaan Combrinck", PracticeNumber: "PP 0825557"},
	{Name: "Dr Nadah Karriem", PracticeNumber: "PP0930369"},
	{Name: "Dr Elze-Mari Greyling", PracticeNumber: "PP 0486884"},
	{Name: "Dr Hans Relling", PracticeNumber: "PP 0010170"},
	{Name: "Dr Thomas van Heerden", PracticeNumber: "PP 0630195"},
	{Name: "Dr WA Liebenberg", PracticeNumber: "PP 0191728"},
	{Name: "Dr I Taljaard", PracticeNumber: "PP 0940895"},
	{Name: "Dr Andrew Liebenberg", PracticeNumber: "PP 1165755"},
	{Name: "Dr K Gilday", PracticeNumber: "PP 1222791"},
	{Name: "Dr L Mkize", PracticeNumber: "PP 0515175"},
	{Name: "Dr S Jacobs", PracticeNumber: "PP 1108646"},
}

var seedHospitals = []domain.Hospital{
	{Name: "Harbour Bay Advanced Surgical Centre"},
	{Name: "Foreshore Cure Day Hospital"},
	{Name: "Panorama Advanced Surgical Centre"},
	{Name: "Bellville Cure Day Hospital"},
	{Name: "Worcester Advanced Surgical Centre"},
	{Name: "Fourways Cure Day Theater"},
	{Name: "Durbanville Advanced Surgical Centre"},
	{Name: "Somerset West Cure Day Hospital"},
	{Name: "Medgate Advanced Surgical Centre"},
	{Name: "Knysna Advanced Surgical Centre"},
	{Name: "Mbombela Cure Day Theater"},
	{Name: "Hermanus Day Hospital"},
}

// SeedDirectory loads the initial doctors and hospitals into an empty
// directory. A non-empty directory is left alone.
func SeedDirectory(ctx context.Context, repo DirectoryRepository) error {
	doctors, err := repo.ListDoctors(ctx)
	if err != nil {
		return fmt.Errorf("failed to read doctors: %w", err)
	}
	if len(doctors) == 0 {
		for _, d := range seedDoctors {
			d.DoctorID = uuid.NewString()
			if err := repo.AddDoctor(ctx, d); err != nil {
				return fmt.Errorf("failed to seed doctor %q: %w", d.Name, err)
			}
		}
	}

	hospitals, err := repo.ListHospitals(ctx)
	if err != nil {
		return fmt.Errorf("failed to read hospitals: %w", err)
	}
	if len(hospitals) == 0 {
		for _, h := range seedHospitals {
			h.HospitalID = uuid.NewString()
			if err := repo.AddHospital(ctx, h); err != nil {
				return fmt.Errorf("failed to seed hospital %q: %w", h.Name, err)
			}
		}
	}
	return nil
}
