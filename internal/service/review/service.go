package review

import (
	"context"

	"github.com/medibridge/directory-api/internal/model"
	"github.com/medibridge/directory-api/internal/repository/store"
)

type Service struct {
	reviews store.Repository[model.Review, *model.Review]
}

func NewService(backend store.Backend) *Service {
	return &Service{reviews: store.NewRepository[model.Review](backend)}
}

func (s *Service) Create(ctx context.Context, r *model.Review) (string, error) {
	return s.reviews.Insert(ctx, r)
}

func (s *Service) List(ctx context.Context, filters model.ReviewFilters) ([]*model.Review, error) {
	f := store.Filter{}
	if filters.HospitalID != "" {
		f = f.Eq("hospital_id", filters.HospitalID)
	}
	if filters.DoctorID != "" {
		f = f.Eq("doctor_id", filters.DoctorID)
	}
	return s.reviews.Query(ctx, f, 0)
}
