package model

type Review struct {
	Base
	PatientID  string  `json:"patient_id"`
	HospitalID string  `json:"hospital_id,omitempty"`
	DoctorID   string  `json:"doctor_id,omitempty"`
	Rating     float64 `json:"rating"`
	Title      string  `json:"title,omitempty"`
	Comment    string  `json:"comment,omitempty"`
}

func (*Review) Collection() string { return "review" }

type CreateReviewRequest struct {
	PatientID  string  `json:"patient_id" binding:"required"`
	HospitalID string  `json:"hospital_id"`
	DoctorID   string  `json:"doctor_id"`
	Rating     float64 `json:"rating" binding:"required,gte=1,lte=5"`
	Title      string  `json:"title"`
	Comment    string  `json:"comment"`
}

func (r *CreateReviewRequest) Review() *Review {
	return &Review{
		PatientID:  r.PatientID,
		HospitalID: r.HospitalID,
		DoctorID:   r.DoctorID,
		Rating:     r.Rating,
		Title:      r.Title,
		Comment:    r.Comment,
	}
}

// ReviewFilters holds the optional query parameters for GET /reviews.
type ReviewFilters struct {
	HospitalID string `form:"hospital_id"`
	DoctorID   string `form:"doctor_id"`
}
