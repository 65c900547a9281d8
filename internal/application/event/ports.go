package event

import (
	"context"
	"time"

	"github.com/baechuer/event-rest-api/internal/domain"
)

type Clock interface {
	Now() time.Time
}

// EventRepo is the storage collaborator. Save assigns an ID on first save
// and returns domain.ErrNotFound when asked to overwrite a missing ID.
type EventRepo interface {
	Save(ctx context.Context, e *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id int64) (*domain.Event, error)
	FindPage(ctx context.Context, req PageRequest) (Page, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error
}
