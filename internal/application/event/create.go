package event

import (
	"context"

	"github.com/baechuer/event-rest-api/internal/domain"
)

type CreateCmd struct {
	Input Candidate
	// DecodeErr is set when the request body could not be read into Input.
	DecodeErr error
}

func (s *Service) Create(ctx context.Context, cmd CreateCmd) (*domain.Event, error) {
	if cmd.DecodeErr != nil {
		return nil, MalformedBody(cmd.DecodeErr)
	}
	if verr := s.validator.Validate(cmd.Input); verr != nil {
		return nil, verr
	}

	e := domain.NewDraft(cmd.Input.fields())

	saved, err := s.repo.Save(ctx, e)
	if err != nil {
		return nil, err
	}

	s.publishChanged(ctx, RoutingKeyCreated, saved)
	return saved, nil
}

// fields assumes the candidate already passed structural validation.
func (c Candidate) fields() domain.Fields {
	return domain.Fields{
		Name:                    c.Name,
		Description:             c.Description,
		BeginEnrollmentDateTime: *c.BeginEnrollmentDateTime,
		CloseEnrollmentDateTime: *c.CloseEnrollmentDateTime,
		BeginEventDateTime:      *c.BeginEventDateTime,
		EndEventDateTime:        *c.EndEventDateTime,
		Location:                c.Location,
		BasePrice:               c.BasePrice,
		MaxPrice:                c.MaxPrice,
		LimitOfEnrollment:       c.LimitOfEnrollment,
	}
}
