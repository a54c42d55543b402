// Package directory serves the hospital/doctor/treatment listings that make
// up the marketplace catalogue.
package directory

import (
	"context"

	"github.com/medibridge/directory-api/internal/model"
	"github.com/medibridge/directory-api/internal/repository/store"
)

type Service struct {
	hospitals  store.Repository[model.Hospital, *model.Hospital]
	doctors    store.Repository[model.Doctor, *model.Doctor]
	treatments store.Repository[model.Treatment, *model.Treatment]
}

func NewService(backend store.Backend) *Service {
	return &Service{
		hospitals:  store.NewRepository[model.Hospital](backend),
		doctors:    store.NewRepository[model.Doctor](backend),
		treatments: store.NewRepository[model.Treatment](backend),
	}
}

func (s *Service) CreateHospital(ctx context.Context, h *model.Hospital) (string, error) {
	return s.hospitals.Insert(ctx, h)
}

// ListHospitals filters by case-insensitive name substring and exact
// specialty membership; both are optional.
func (s *Service) ListHospitals(ctx context.Context, filters model.HospitalFilters) ([]*model.Hospital, error) {
	f := store.Filter{}
	if filters.Q != "" {
		f = f.Match("name", filters.Q)
	}
	if filters.Specialty != "" {
		f = f.Has("specialties", filters.Specialty)
	}
	return s.hospitals.Query(ctx, f, 0)
}

func (s *Service) CreateDoctor(ctx context.Context, d *model.Doctor) (string, error) {
	return s.doctors.Insert(ctx, d)
}

func (s *Service) ListDoctors(ctx context.Context, filters model.DoctorFilters) ([]*model.Doctor, error) {
	f := store.Filter{}
	if filters.HospitalID != "" {
		f = f.Eq("hospital_id", filters.HospitalID)
	}
	if filters.Specialty != "" {
		f = f.Eq("specialty", filters.Specialty)
	}
	return s.doctors.Query(ctx, f, 0)
}

func (s *Service) CreateTreatment(ctx context.Context, t *model.Treatment) (string, error) {
	return s.treatments.Insert(ctx, t)
}

func (s *Service) ListTreatments(ctx context.Context, filters model.TreatmentFilters) ([]*model.Treatment, error) {
	f := store.Filter{}
	if filters.Category != "" {
		f = f.Eq("category", filters.Category)
	}
	return s.treatments.Query(ctx, f, 0)
}
