package model

type Doctor struct {
	Base
	Name            string   `json:"name"`
	HospitalID      string   `json:"hospital_id"`
	Specialty       string   `json:"specialty"`
	ExperienceYears int      `json:"experience_years"`
	Rating          float64  `json:"rating"`
	Languages       []string `json:"languages"`
	Credentials     []string `json:"credentials"`
	Bio             string   `json:"bio,omitempty"`
	ConsultationFee float64  `json:"consultation_fee"`
}

func (*Doctor) Collection() string { return "doctor" }

type CreateDoctorRequest struct {
	Name            string   `json:"name" binding:"required"`
	HospitalID      string   `json:"hospital_id" binding:"required"`
	Specialty       string   `json:"specialty" binding:"required"`
	ExperienceYears *int     `json:"experience_years" binding:"omitempty,gte=0"`
	Rating          *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	Languages       []string `json:"languages"`
	Credentials     []string `json:"credentials"`
	Bio             string   `json:"bio"`
	ConsultationFee *float64 `json:"consultation_fee" binding:"omitempty,gte=0"`
}

func (r *CreateDoctorRequest) Doctor() *Doctor {
	d := &Doctor{
		Name:            r.Name,
		HospitalID:      r.HospitalID,
		Specialty:       r.Specialty,
		ExperienceYears: 5,
		Rating:          4.6,
		Languages:       r.Languages,
		Credentials:     r.Credentials,
		Bio:             r.Bio,
		ConsultationFee: 1000.0,
	}
	if r.ExperienceYears != nil {
		d.ExperienceYears = *r.ExperienceYears
	}
	if r.Rating != nil {
		d.Rating = *r.Rating
	}
	if r.ConsultationFee != nil {
		d.ConsultationFee = *r.ConsultationFee
	}
	if d.Languages == nil {
		d.Languages = []string{"en", "hi", "kn"}
	}
	if d.Credentials == nil {
		d.Credentials = []string{}
	}
	return d
}

// DoctorFilters holds the optional query parameters for GET /doctors.
type DoctorFilters struct {
	HospitalID string `form:"hospital_id"`
	Specialty  string `form:"specialty"`
}
