package analytics

import (
	"context"
	"time"

	"github.com/medibridge/directory-api/internal/model"
	"github.com/medibridge/directory-api/internal/repository/store"
)

type Service struct {
	events store.Repository[model.AnalyticsEvent, *model.AnalyticsEvent]
	now    func() time.Time
}

func NewService(backend store.Backend) *Service {
	return &Service{
		events: store.NewRepository[model.AnalyticsEvent](backend),
		now:    time.Now,
	}
}

// Track records the event; ts defaults to the time of tracking.
func (s *Service) Track(ctx context.Context, req *model.TrackEventRequest) (string, error) {
	return s.events.Insert(ctx, req.AnalyticsEvent(s.now().UTC()))
}
