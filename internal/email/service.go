package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/medibridge/directory-api/internal/model"
)

// Service sends operational notifications. Failures are the caller's to
// log and swallow; mail must never fail a booking.
type Service interface {
	SendAppointmentConfirmation(ctx context.Context, appointmentID string, appt *model.Appointment) error
}

// Noop is used when SMTP is not configured.
type Noop struct{}

func (Noop) SendAppointmentConfirmation(ctx context.Context, appointmentID string, appt *model.Appointment) error {
	return nil
}

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	NotifyTo string
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewSMTPService(cfg Config) Service {
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		to:     cfg.NotifyTo,
	}
}

func (s *smtpService) SendAppointmentConfirmation(ctx context.Context, appointmentID string, appt *model.Appointment) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", s.to)
	m.SetHeader("Subject", fmt.Sprintf("New %s appointment %s", appt.Type, appointmentID))
	m.SetBody("text/plain", fmt.Sprintf(
		"Appointment %s\n\nPatient: %s\nDoctor: %s\nHospital: %s\nWhen: %s\nStatus: %s\nNotes: %s\n",
		appointmentID, appt.PatientID, appt.DoctorID, appt.HospitalID,
		appt.DatetimeISO, appt.Status, appt.Notes,
	))
	return s.dialer.DialAndSend(m)
}
