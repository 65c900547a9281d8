package event

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/event-rest-api/internal/domain"
)

type UpdateCmd struct {
	EventID   int64
	Input     Candidate
	DecodeErr error
}

// Update looks the event up before any validation, so an unknown ID is
// reported as not found even when the body is invalid.
func (s *Service) Update(ctx context.Context, cmd UpdateCmd) (*domain.Event, error) {
	ev, err := s.repo.FindByID(ctx, cmd.EventID)
	if err != nil {
		return nil, err
	}

	if cmd.DecodeErr != nil {
		return nil, MalformedBody(cmd.DecodeErr)
	}
	if verr := s.validator.Validate(cmd.Input); verr != nil {
		return nil, verr
	}

	ev.Apply(cmd.Input.fields())

	// no implicit write-back: always save explicitly
	updated, err := s.repo.Save(ctx, ev)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		key := cacheKeyEventDetails(updated.ID)
		if err := s.cache.Delete(ctx, key); err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache invalidate failed")
		}
	}

	s.publishChanged(ctx, RoutingKeyUpdated, updated)
	return updated, nil
}
