package model

// Patient password hashes are opaque strings produced elsewhere; this
// service never computes or verifies them.
type Patient struct {
	Base
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Country        string `json:"country,omitempty"`
	Language       string `json:"language"`
	PasswordHash   string `json:"password_hash"`
	PassportNumber string `json:"passport_number,omitempty"`
	MedicalHistory string `json:"medical_history,omitempty"`
	IsVerified     bool   `json:"is_verified"`
}

func (*Patient) Collection() string { return "patient" }

type CreatePatientRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Country        string `json:"country"`
	Language       string `json:"language"`
	PasswordHash   string `json:"password_hash" binding:"required"`
	PassportNumber string `json:"passport_number"`
	MedicalHistory string `json:"medical_history"`
	IsVerified     *bool  `json:"is_verified"`
}

func (r *CreatePatientRequest) Patient() *Patient {
	p := &Patient{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Country:        r.Country,
		Language:       r.Language,
		PasswordHash:   r.PasswordHash,
		PassportNumber: r.PassportNumber,
		MedicalHistory: r.MedicalHistory,
		IsVerified:     true,
	}
	if p.Language == "" {
		p.Language = "en"
	}
	if r.IsVerified != nil {
		p.IsVerified = *r.IsVerified
	}
	return p
}
