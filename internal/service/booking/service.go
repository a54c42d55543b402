// Package booking records appointments and travel/concierge requests.
// Cross-entity references (patient_id, doctor_id, hospital_id) are opaque
// strings; nothing validates them against other collections.
package booking

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medibridge/directory-api/internal/email"
	"github.com/medibridge/directory-api/internal/model"
	"github.com/medibridge/directory-api/internal/repository/store"
)

type Service struct {
	appointments   store.Repository[model.Appointment, *model.Appointment]
	travelRequests store.Repository[model.TravelRequest, *model.TravelRequest]
	mailer         email.Service
	logger         zerolog.Logger
}

func NewService(backend store.Backend, mailer email.Service, logger zerolog.Logger) *Service {
	return &Service{
		appointments:   store.NewRepository[model.Appointment](backend),
		travelRequests: store.NewRepository[model.TravelRequest](backend),
		mailer:         mailer,
		logger:         logger,
	}
}

// CreateAppointment inserts the appointment and sends a best-effort
// confirmation mail; mail failure never fails the booking.
func (s *Service) CreateAppointment(ctx context.Context, appt *model.Appointment) (string, error) {
	id, err := s.appointments.Insert(ctx, appt)
	if err != nil {
		return "", err
	}

	if err := s.mailer.SendAppointmentConfirmation(ctx, id, appt); err != nil {
		s.logger.Warn().Err(err).Str("appointment_id", id).Msg("confirmation mail failed")
	}
	return id, nil
}

func (s *Service) CreateTravelRequest(ctx context.Context, req *model.TravelRequest) (string, error) {
	return s.travelRequests.Insert(ctx, req)
}
