package model

import "time"

type AnalyticsEvent struct {
	Base
	UserID     string            `json:"user_id,omitempty"`
	Event      string            `json:"event"`
	Properties map[string]string `json:"properties"`
	TS         time.Time         `json:"ts"`
}

func (*AnalyticsEvent) Collection() string { return "analyticsevent" }

type TrackEventRequest struct {
	UserID     string            `json:"user_id"`
	Event      string            `json:"event" binding:"required"`
	Properties map[string]string `json:"properties"`
	TS         *time.Time        `json:"ts"`
}

// AnalyticsEvent builds the record; ts defaults to now when omitted.
func (r *TrackEventRequest) AnalyticsEvent(now time.Time) *AnalyticsEvent {
	e := &AnalyticsEvent{
		UserID:     r.UserID,
		Event:      r.Event,
		Properties: r.Properties,
		TS:         now,
	}
	if r.TS != nil {
		e.TS = *r.TS
	}
	if e.Properties == nil {
		e.Properties = map[string]string{}
	}
	return e
}
