// Package estimate computes the cost-range recommendation for a treatment
// category. Deliberately deterministic arithmetic over stored records; there
// is no model behind it and nothing is cached or persisted.
package estimate

import (
	"context"
	"math"

	"github.com/medibridge/directory-api/internal/model"
	"github.com/medibridge/directory-api/internal/repository/store"
	"github.com/medibridge/directory-api/pkg/errors"
)

const (
	PreferenceCost    = "cost"
	PreferenceSuccess = "success"
	PreferenceSpeed   = "speed"

	maxSuggestions = 5
)

type Request struct {
	TreatmentCategory string   `json:"treatment_category" binding:"required"`
	Preference        string   `json:"preference" binding:"omitempty,oneof=cost success speed"`
	Comorbidities     []string `json:"comorbidities"`
}

type CostRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Response struct {
	RecommendedTreatments []string  `json:"recommended_treatments"`
	EstimatedCostINR      CostRange `json:"estimated_cost_inr"`
	SuggestedHospitals    []string  `json:"suggested_hospitals"`
}

type Service struct {
	treatments store.Repository[model.Treatment, *model.Treatment]
	hospitals  store.Repository[model.Hospital, *model.Hospital]
}

func NewService(backend store.Backend) *Service {
	return &Service{
		treatments: store.NewRepository[model.Treatment](backend),
		hospitals:  store.NewRepository[model.Hospital](backend),
	}
}

// Recommend estimates the cost range for a category and suggests matching
// treatments and hospitals. The adjustment factor starts at 1.0, is scaled
// by the preference, then grows 0.05 per comorbidity; min and max get the
// same factor.
func (s *Service) Recommend(ctx context.Context, req Request) (*Response, error) {
	treatments, err := s.treatments.Query(ctx, store.Filter{}.Eq("category", req.TreatmentCategory), 0)
	if err != nil {
		return nil, err
	}
	if len(treatments) == 0 {
		return nil, errors.NotFound("No treatments found for category")
	}

	estMin := treatments[0].AverageCostINRMin
	estMax := treatments[0].AverageCostINRMax
	for _, t := range treatments[1:] {
		estMin = math.Min(estMin, t.AverageCostINRMin)
		estMax = math.Max(estMax, t.AverageCostINRMax)
	}

	adj := 1.0
	switch req.Preference {
	case PreferenceCost:
		adj = 0.9
	case PreferenceSuccess:
		adj = 1.1
	}
	adj += 0.05 * float64(len(req.Comorbidities))

	hospitals, err := s.hospitals.Query(ctx, store.Filter{}.Has("specialties", req.TreatmentCategory), 0)
	if err != nil {
		return nil, err
	}

	return &Response{
		RecommendedTreatments: treatmentNames(treatments),
		EstimatedCostINR: CostRange{
			Min: round2(estMin * adj),
			Max: round2(estMax * adj),
		},
		SuggestedHospitals: hospitalNames(hospitals),
	}, nil
}

func treatmentNames(ts []*model.Treatment) []string {
	names := make([]string, 0, maxSuggestions)
	for _, t := range ts {
		if len(names) == maxSuggestions {
			break
		}
		names = append(names, t.Name)
	}
	return names
}

func hospitalNames(hs []*model.Hospital) []string {
	names := make([]string, 0, maxSuggestions)
	for _, h := range hs {
		if len(names) == maxSuggestions {
			break
		}
		names = append(names, h.Name)
	}
	return names
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
