package event

import (
	"context"
	"math"
	"strings"

	"github.com/baechuer/event-rest-api/internal/domain"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type SortOrder struct {
	Property  string
	Direction Direction
}

// String renders the order the way it is accepted on the query string.
func (o SortOrder) String() string {
	return o.Property + "," + string(o.Direction)
}

var sortableProperties = map[string]bool{
	"id":                      true,
	"name":                    true,
	"basePrice":               true,
	"maxPrice":                true,
	"limitOfEnrollment":       true,
	"beginEnrollmentDateTime": true,
	"closeEnrollmentDateTime": true,
	"beginEventDateTime":      true,
	"endEventDateTime":        true,
}

func SortableProperty(p string) bool { return sortableProperties[p] }

// ParseSort reads one "sort" query value: "prop[,prop...][,asc|desc]".
// The direction, when given, applies to every property in the value.
func ParseSort(raw string) ([]SortOrder, error) {
	parts := strings.Split(raw, ",")
	dir := Asc
	if n := len(parts); n > 1 {
		switch strings.ToLower(strings.TrimSpace(parts[n-1])) {
		case "asc":
			parts = parts[:n-1]
		case "desc":
			dir = Desc
			parts = parts[:n-1]
		}
	}

	var out []SortOrder
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !SortableProperty(p) {
			return nil, domain.ErrValidationMeta("invalid query param", map[string]string{
				"sort": "unknown property: " + p,
			})
		}
		out = append(out, SortOrder{Property: p, Direction: dir})
	}
	return out, nil
}

type PageRequest struct {
	Number int // zero-based
	Size   int
	Sort   []SortOrder
}

func (r *PageRequest) Normalize(defaultSize, maxSize int) error {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if maxSize <= 0 {
		maxSize = MaxPageSize
	}
	if r.Number < 0 {
		r.Number = 0
	}
	if r.Size <= 0 {
		r.Size = defaultSize
	}
	if r.Size > maxSize {
		r.Size = maxSize
	}
	// keep Offset within int
	if limit := math.MaxInt / r.Size; r.Number > limit {
		r.Number = limit
	}
	for _, o := range r.Sort {
		if !SortableProperty(o.Property) {
			return domain.ErrValidationMeta("invalid query param", map[string]string{
				"sort": "unknown property: " + o.Property,
			})
		}
		if o.Direction != Asc && o.Direction != Desc {
			return domain.ErrValidationMeta("invalid query param", map[string]string{
				"sort": "direction must be asc or desc",
			})
		}
	}
	return nil
}

func (r PageRequest) Offset() int { return r.Number * r.Size }

// Page is one slice of the collection plus what is needed to navigate it.
type Page struct {
	Items         []*domain.Event
	Request       PageRequest
	TotalElements int64
}

func (p Page) Number() int { return p.Request.Number }
func (p Page) Size() int   { return p.Request.Size }

func (p Page) TotalPages() int {
	if p.Request.Size <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Request.Size) - 1) / int64(p.Request.Size))
}

// LastIndex is the index of the last page; an empty collection still has page 0.
func (p Page) LastIndex() int {
	return max(p.TotalPages()-1, 0)
}

func (p Page) HasPrev() bool { return p.Number() > 0 }
func (p Page) HasNext() bool { return p.Number() < p.LastIndex() }

// List reads straight from storage; it is never cached.
func (s *Service) List(ctx context.Context, req PageRequest) (Page, error) {
	if err := req.Normalize(s.pageDefault, s.pageMax); err != nil {
		return Page{}, err
	}
	return s.repo.FindPage(ctx, req)
}
