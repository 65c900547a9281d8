package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/event-rest-api/internal/domain"
	appctx "github.com/baechuer/event-rest-api/internal/pkg/context"
)

const (
	EventVersion  = 1
	EventProducer = "event-rest-api"

	RoutingKeyCreated = "event.created"
	RoutingKeyUpdated = "event.updated"
)

// DomainEventEnvelope is the stable contract for messages emitted on writes.
type DomainEventEnvelope[T any] struct {
	Version    int       `json:"version"`
	Producer   string    `json:"producer"`
	MessageID  string    `json:"message_id"`
	TraceID    string    `json:"trace_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    T         `json:"payload"`
}

// EventChangedPayload is the body for event.created and event.updated.
type EventChangedPayload struct {
	EventID            int64     `json:"event_id"`
	Name               string    `json:"name"`
	BeginEventDateTime time.Time `json:"begin_event_date_time"`
	EndEventDateTime   time.Time `json:"end_event_date_time"`
	BasePrice          int       `json:"base_price"`
	MaxPrice           int       `json:"max_price"`
	LimitOfEnrollment  int       `json:"limit_of_enrollment"`
	Free               bool      `json:"free"`
	Offline            bool      `json:"offline"`
	Status             string    `json:"status"`
}

// publishChanged emits a best-effort notification; failures are only logged.
func (s *Service) publishChanged(ctx context.Context, routingKey string, ev *domain.Event) {
	env := DomainEventEnvelope[EventChangedPayload]{
		Version:    EventVersion,
		Producer:   EventProducer,
		MessageID:  uuid.NewString(),
		TraceID:    appctx.RequestID(ctx),
		OccurredAt: s.clock.Now().UTC(),
		Payload: EventChangedPayload{
			EventID:            ev.ID,
			Name:               ev.Name,
			BeginEventDateTime: ev.BeginEventDateTime,
			EndEventDateTime:   ev.EndEventDateTime,
			BasePrice:          ev.BasePrice,
			MaxPrice:           ev.MaxPrice,
			LimitOfEnrollment:  ev.LimitOfEnrollment,
			Free:               ev.Free,
			Offline:            ev.Offline,
			Status:             string(ev.Status),
		},
	}

	body, err := json.Marshal(env)
	if err != nil {
		zlog.Error().Err(err).Str("rk", routingKey).Int64("event_id", ev.ID).Msg("marshal domain event failed")
		return
	}
	if err := s.pub.PublishEvent(ctx, routingKey, env.MessageID, body); err != nil {
		zlog.Error().
			Err(err).
			Str("rk", routingKey).
			Int64("event_id", ev.ID).
			Msg("publish domain event failed")
	}
}
