// Package account registers patient and staff records. Password hashes
// arrive pre-computed and are stored as opaque strings.
package account

import (
	"context"

	"github.com/medibridge/directory-api/internal/model"
	"github.com/medibridge/directory-api/internal/repository/store"
)

type Service struct {
	patients store.Repository[model.Patient, *model.Patient]
	staff    store.Repository[model.Staff, *model.Staff]
}

func NewService(backend store.Backend) *Service {
	return &Service{
		patients: store.NewRepository[model.Patient](backend),
		staff:    store.NewRepository[model.Staff](backend),
	}
}

func (s *Service) CreatePatient(ctx context.Context, p *model.Patient) (string, error) {
	return s.patients.Insert(ctx, p)
}

func (s *Service) CreateStaff(ctx context.Context, st *model.Staff) (string, error) {
	return s.staff.Insert(ctx, st)
}
