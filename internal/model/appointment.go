package model

type AppointmentType string

const (
	AppointmentTypeInPerson    AppointmentType = "in_person"
	AppointmentTypeTeleconsult AppointmentType = "teleconsult"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

type Appointment struct {
	Base
	PatientID   string            `json:"patient_id"`
	DoctorID    string            `json:"doctor_id"`
	HospitalID  string            `json:"hospital_id"`
	DatetimeISO string            `json:"datetime_iso"`
	Type        AppointmentType   `json:"type"`
	Status      AppointmentStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
}

func (*Appointment) Collection() string { return "appointment" }

type CreateAppointmentRequest struct {
	PatientID   string `json:"patient_id" binding:"required"`
	DoctorID    string `json:"doctor_id" binding:"required"`
	HospitalID  string `json:"hospital_id" binding:"required"`
	DatetimeISO string `json:"datetime_iso" binding:"required"`
	Type        string `json:"type" binding:"omitempty,oneof=in_person teleconsult"`
	Status      string `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	Notes       string `json:"notes"`
}

func (r *CreateAppointmentRequest) Appointment() *Appointment {
	a := &Appointment{
		PatientID:   r.PatientID,
		DoctorID:    r.DoctorID,
		HospitalID:  r.HospitalID,
		DatetimeISO: r.DatetimeISO,
		Type:        AppointmentType(r.Type),
		Status:      AppointmentStatus(r.Status),
		Notes:       r.Notes,
	}
	if a.Type == "" {
		a.Type = AppointmentTypeInPerson
	}
	if a.Status == "" {
		a.Status = AppointmentStatusPending
	}
	return a
}
