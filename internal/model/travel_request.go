package model

// TravelDates carries the requested arrival/departure window; either side
// may be open.
type TravelDates struct {
	Arrival   *string `json:"arrival"`
	Departure *string `json:"departure"`
}

type TravelRequest struct {
	Base
	PatientID   string      `json:"patient_id"`
	Services    []string    `json:"services"`
	TravelDates TravelDates `json:"travel_dates"`
	Passengers  int         `json:"passengers"`
	BudgetINR   *float64    `json:"budget_inr,omitempty"`
	Notes       string      `json:"notes,omitempty"`
}

func (*TravelRequest) Collection() string { return "travelrequest" }

type CreateTravelRequestRequest struct {
	PatientID   string      `json:"patient_id" binding:"required"`
	Services    []string    `json:"services"`
	TravelDates TravelDates `json:"travel_dates"`
	Passengers  *int        `json:"passengers" binding:"omitempty,gte=1"`
	BudgetINR   *float64    `json:"budget_inr" binding:"omitempty,gte=0"`
	Notes       string      `json:"notes"`
}

func (r *CreateTravelRequestRequest) TravelRequest() *TravelRequest {
	t := &TravelRequest{
		PatientID:   r.PatientID,
		Services:    r.Services,
		TravelDates: r.TravelDates,
		Passengers:  1,
		BudgetINR:   r.BudgetINR,
		Notes:       r.Notes,
	}
	if r.Passengers != nil {
		t.Passengers = *r.Passengers
	}
	if t.Services == nil {
		t.Services = []string{"visa_guidance", "airport_pickup", "accommodation"}
	}
	return t
}
