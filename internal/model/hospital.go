package model

type HospitalType string

const (
	HospitalTypeMultiSpecialty HospitalType = "multi-specialty"
	HospitalTypeSpecialty      HospitalType = "specialty"
	HospitalTypeClinic         HospitalType = "clinic"
)

type Hospital struct {
	Base
	Name              string       `json:"name"`
	Type              HospitalType `json:"type"`
	Address           string       `json:"address"`
	City              string       `json:"city"`
	State             string       `json:"state"`
	Country           string       `json:"country"`
	Accreditation     string       `json:"accreditation,omitempty"`
	Specialties       []string     `json:"specialties"`
	Rating            float64      `json:"rating"`
	ReviewsCount      int          `json:"reviews_count"`
	Latitude          *float64     `json:"latitude,omitempty"`
	Longitude         *float64     `json:"longitude,omitempty"`
	EmergencyHelpline string       `json:"emergency_helpline,omitempty"`
	Website           string       `json:"website,omitempty"`
	Images            []string     `json:"images"`
}

func (*Hospital) Collection() string { return "hospital" }

type CreateHospitalRequest struct {
	Name              string   `json:"name" binding:"required"`
	Type              string   `json:"type" binding:"omitempty,oneof=multi-specialty specialty clinic"`
	Address           string   `json:"address" binding:"required"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	Country           string   `json:"country"`
	Accreditation     string   `json:"accreditation"`
	Specialties       []string `json:"specialties"`
	Rating            *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
	ReviewsCount      int      `json:"reviews_count"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	EmergencyHelpline string   `json:"emergency_helpline"`
	Website           string   `json:"website"`
	Images            []string `json:"images"`
}

// Hospital applies the source defaults for omitted fields (Bengaluru focus).
func (r *CreateHospitalRequest) Hospital() *Hospital {
	h := &Hospital{
		Name:              r.Name,
		Type:              HospitalType(r.Type),
		Address:           r.Address,
		City:              r.City,
		State:             r.State,
		Country:           r.Country,
		Accreditation:     r.Accreditation,
		Specialties:       r.Specialties,
		Rating:            4.5,
		ReviewsCount:      r.ReviewsCount,
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
		EmergencyHelpline: r.EmergencyHelpline,
		Website:           r.Website,
		Images:            r.Images,
	}
	if h.Type == "" {
		h.Type = HospitalTypeMultiSpecialty
	}
	if h.City == "" {
		h.City = "Bengaluru"
	}
	if h.State == "" {
		h.State = "Karnataka"
	}
	if h.Country == "" {
		h.Country = "India"
	}
	if r.Rating != nil {
		h.Rating = *r.Rating
	}
	if h.Specialties == nil {
		h.Specialties = []string{}
	}
	if h.Images == nil {
		h.Images = []string{}
	}
	return h
}

// HospitalFilters holds the optional query parameters for GET /hospitals.
type HospitalFilters struct {
	Q         string `form:"q"`
	Specialty string `form:"specialty"`
}
