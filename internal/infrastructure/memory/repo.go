package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/baechuer/event-rest-api/internal/application/event"
	"github.com/baechuer/event-rest-api/internal/domain"
)

// Repo is an in-process event store used in dev mode and in tests.
// It hands out copies so callers never share state with the store.
type Repo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]domain.Event
}

func New() *Repo {
	return &Repo{byID: map[int64]domain.Event{}}
}

func (r *Repo) Save(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == 0 {
		r.nextID++
		e.ID = r.nextID
	} else if _, ok := r.byID[e.ID]; !ok {
		return nil, domain.ErrNotFound("event not found")
	}

	r.byID[e.ID] = *e
	out := *e
	return &out, nil
}

func (r *Repo) FindByID(ctx context.Context, id int64) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound("event not found")
	}
	return &e, nil
}

func (r *Repo) FindPage(ctx context.Context, req event.PageRequest) (event.Page, error) {
	r.mu.RLock()
	all := make([]domain.Event, 0, len(r.byID))
	for _, e := range r.byID {
		all = append(all, e)
	}
	r.mu.RUnlock()

	slices.SortFunc(all, func(a, b domain.Event) int {
		for _, o := range req.Sort {
			c := compareBy(o.Property, &a, &b)
			if o.Direction == event.Desc {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return cmp.Compare(a.ID, b.ID)
	})

	page := event.Page{Request: req, TotalElements: int64(len(all)), Items: []*domain.Event{}}
	start := req.Offset()
	if req.Size <= 0 || start < 0 || start >= len(all) {
		return page, nil
	}
	end := min(start+req.Size, len(all))
	for i := start; i < end; i++ {
		e := all[i]
		page.Items = append(page.Items, &e)
	}
	return page, nil
}

func compareBy(prop string, a, b *domain.Event) int {
	switch prop {
	case "id":
		return cmp.Compare(a.ID, b.ID)
	case "name":
		return cmp.Compare(a.Name, b.Name)
	case "basePrice":
		return cmp.Compare(a.BasePrice, b.BasePrice)
	case "maxPrice":
		return cmp.Compare(a.MaxPrice, b.MaxPrice)
	case "limitOfEnrollment":
		return cmp.Compare(a.LimitOfEnrollment, b.LimitOfEnrollment)
	case "beginEnrollmentDateTime":
		return a.BeginEnrollmentDateTime.Compare(b.BeginEnrollmentDateTime)
	case "closeEnrollmentDateTime":
		return a.CloseEnrollmentDateTime.Compare(b.CloseEnrollmentDateTime)
	case "beginEventDateTime":
		return a.BeginEventDateTime.Compare(b.BeginEventDateTime)
	case "endEventDateTime":
		return a.EndEventDateTime.Compare(b.EndEventDateTime)
	default:
		return 0
	}
}
