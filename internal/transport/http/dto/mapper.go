package dto

import (
	"github.com/baechuer/event-rest-api/internal/application/event"
	"github.com/baechuer/event-rest-api/internal/domain"
	"github.com/baechuer/event-rest-api/internal/transport/http/hal"
)

func (r EventReq) ToCandidate() event.Candidate {
	return event.Candidate{
		Name:                    r.Name,
		Description:             r.Description,
		BeginEnrollmentDateTime: r.BeginEnrollmentDateTime.ptr(),
		CloseEnrollmentDateTime: r.CloseEnrollmentDateTime.ptr(),
		BeginEventDateTime:      r.BeginEventDateTime.ptr(),
		EndEventDateTime:        r.EndEventDateTime.ptr(),
		Location:                r.Location,
		BasePrice:               r.BasePrice,
		MaxPrice:                r.MaxPrice,
		LimitOfEnrollment:       r.LimitOfEnrollment,
	}
}

func ToEventModel(e *domain.Event, links hal.Links) EventModel {
	return EventModel{
		ID:                      e.ID,
		Name:                    e.Name,
		Description:             e.Description,
		BeginEnrollmentDateTime: e.BeginEnrollmentDateTime,
		CloseEnrollmentDateTime: e.CloseEnrollmentDateTime,
		BeginEventDateTime:      e.BeginEventDateTime,
		EndEventDateTime:        e.EndEventDateTime,
		Location:                e.Location,
		BasePrice:               e.BasePrice,
		MaxPrice:                e.MaxPrice,
		LimitOfEnrollment:       e.LimitOfEnrollment,
		Offline:                 e.Offline,
		Free:                    e.Free,
		EventStatus:             string(e.Status),
		Links:                   links,
	}
}

// ToPagedModel renders a page; items only carry a self link.
func ToPagedModel(base string, p event.Page) PagedModel {
	items := make([]EventModel, 0, len(p.Items))
	for _, e := range p.Items {
		items = append(items, ToEventModel(e, hal.ForEvent(base, e.ID, hal.OpListItem)))
	}
	return PagedModel{
		Embedded: EventList{EventList: items},
		Links:    hal.ForPage(base, p),
		Page: PageMeta{
			Size:          p.Size(),
			TotalElements: p.TotalElements,
			TotalPages:    p.TotalPages(),
			Number:        p.Number(),
		},
	}
}

func ToErrorsModel(base string, vs event.Violations) ErrorsModel {
	if vs == nil {
		vs = event.Violations{}
	}
	return ErrorsModel{Errors: vs, Links: hal.ForError(base)}
}
