package model

type TreatmentCategory string

const (
	TreatmentCategoryCardiac    TreatmentCategory = "cardiac"
	TreatmentCategoryOrthopedic TreatmentCategory = "orthopedic"
	TreatmentCategoryDental     TreatmentCategory = "dental"
	TreatmentCategoryCosmetic   TreatmentCategory = "cosmetic"
	TreatmentCategoryFertility  TreatmentCategory = "fertility"
	TreatmentCategoryOncology   TreatmentCategory = "oncology"
	TreatmentCategoryNeuro      TreatmentCategory = "neuro"
	TreatmentCategoryGeneral    TreatmentCategory = "general"
)

type Treatment struct {
	Base
	Name              string            `json:"name"`
	Category          TreatmentCategory `json:"category"`
	Description       string            `json:"description,omitempty"`
	AverageCostINRMin float64           `json:"average_cost_inr_min"`
	AverageCostINRMax float64           `json:"average_cost_inr_max"`
	TypicalStayDays   int               `json:"typical_stay_days"`
	SuccessRate       *float64          `json:"success_rate,omitempty"`
	Hospitals         []string          `json:"hospitals"`
}

func (*Treatment) Collection() string { return "treatment" }

type CreateTreatmentRequest struct {
	Name              string   `json:"name" binding:"required"`
	Category          string   `json:"category" binding:"omitempty,oneof=cardiac orthopedic dental cosmetic fertility oncology neuro general"`
	Description       string   `json:"description"`
	// Pointers so a free treatment (cost 0) still passes the presence check.
	AverageCostINRMin *float64 `json:"average_cost_inr_min" binding:"required"`
	AverageCostINRMax *float64 `json:"average_cost_inr_max" binding:"required"`
	TypicalStayDays   *int     `json:"typical_stay_days" binding:"omitempty,gte=0"`
	SuccessRate       *float64 `json:"success_rate" binding:"omitempty,gte=0,lte=100"`
	Hospitals         []string `json:"hospitals"`
}

func (r *CreateTreatmentRequest) Treatment() *Treatment {
	t := &Treatment{
		Name:              r.Name,
		Category:          TreatmentCategory(r.Category),
		Description:       r.Description,
		AverageCostINRMin: *r.AverageCostINRMin,
		AverageCostINRMax: *r.AverageCostINRMax,
		TypicalStayDays:   3,
		SuccessRate:       r.SuccessRate,
		Hospitals:         r.Hospitals,
	}
	if t.Category == "" {
		t.Category = TreatmentCategoryGeneral
	}
	if r.TypicalStayDays != nil {
		t.TypicalStayDays = *r.TypicalStayDays
	}
	if t.Hospitals == nil {
		t.Hospitals = []string{}
	}
	return t
}

// TreatmentFilters holds the optional query parameters for GET /treatments.
type TreatmentFilters struct {
	Category string `form:"category"`
}
