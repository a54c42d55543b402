package store

import (
	"context"
	"fmt"

	"github.com/medibridge/directory-api/internal/model"
)

// SeedVersion is bumped whenever the sample directory data changes.
const SeedVersion = 1

// seedMarker persists the applied seed version in the meta collection. The
// marker, not a live row count, gates seeding: directory data deleted back
// to zero must not trigger a re-seed.
type seedMarker struct {
	model.Base
	Key     string `json:"key"`
	Version int    `json:"version"`
}

func (*seedMarker) Collection() string { return "meta" }

const seedMarkerKey = "seed_version"

// EnsureSeed is an explicit migration step invoked at process start. It
// inserts the sample hospitals and treatments once per seed version.
func EnsureSeed(ctx context.Context, backend Backend) (bool, error) {
	markers := NewRepository[seedMarker](backend)

	applied, err := markers.Query(ctx, Filter{}.Eq("key", seedMarkerKey), 0)
	if err != nil {
		return false, fmt.Errorf("read seed marker: %w", err)
	}
	for _, m := range applied {
		if m.Version >= SeedVersion {
			return false, nil
		}
	}

	hospitals := NewRepository[model.Hospital](backend)
	for _, h := range sampleHospitals() {
		if _, err := hospitals.Insert(ctx, h); err != nil {
			return false, fmt.Errorf("seed hospital %q: %w", h.Name, err)
		}
	}

	treatments := NewRepository[model.Treatment](backend)
	for _, t := range sampleTreatments() {
		if _, err := treatments.Insert(ctx, t); err != nil {
			return false, fmt.Errorf("seed treatment %q: %w", t.Name, err)
		}
	}

	if _, err := markers.Insert(ctx, &seedMarker{Key: seedMarkerKey, Version: SeedVersion}); err != nil {
		return false, fmt.Errorf("write seed marker: %w", err)
	}
	return true, nil
}

func sampleHospitals() []*model.Hospital {
	return []*model.Hospital{
		{
			Name:              "Narayana Health City",
			Type:              model.HospitalTypeMultiSpecialty,
			Address:           "Bommasandra, Bengaluru",
			City:              "Bengaluru",
			State:             "Karnataka",
			Country:           "India",
			Accreditation:     "NABH/JCI",
			Specialties:       []string{"cardiac", "orthopedic", "oncology", "neuro"},
			Rating:            4.6,
			EmergencyHelpline: "1800-123-4567",
			Website:           "https://www.narayanahealth.org/",
			Images:            []string{},
		},
		{
			Name:              "Manipal Hospital Old Airport Road",
			Type:              model.HospitalTypeMultiSpecialty,
			Address:           "HAL Old Airport Rd, Bengaluru",
			City:              "Bengaluru",
			State:             "Karnataka",
			Country:           "India",
			Accreditation:     "NABH",
			Specialties:       []string{"cardiac", "fertility", "orthopedic", "dental"},
			Rating:            4.5,
			EmergencyHelpline: "080-2222-3333",
			Website:           "https://www.manipalhospitals.com/",
			Images:            []string{},
		},
	}
}

func sampleTreatments() []*model.Treatment {
	successRate := func(v float64) *float64 { return &v }
	return []*model.Treatment{
		{
			Name:              "CABG - Coronary Bypass",
			Category:          model.TreatmentCategoryCardiac,
			AverageCostINRMin: 250000,
			AverageCostINRMax: 450000,
			TypicalStayDays:   7,
			SuccessRate:       successRate(95.0),
			Hospitals:         []string{},
		},
		{
			Name:              "Total Knee Replacement",
			Category:          model.TreatmentCategoryOrthopedic,
			AverageCostINRMin: 180000,
			AverageCostINRMax: 350000,
			TypicalStayDays:   5,
			Hospitals:         []string{},
		},
		{
			Name:              "Dental Implants",
			Category:          model.TreatmentCategoryDental,
			AverageCostINRMin: 25000,
			AverageCostINRMax: 60000,
			TypicalStayDays:   1,
			Hospitals:         []string{},
		},
	}
}
