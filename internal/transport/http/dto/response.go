package dto

import (
	"time"

	"github.com/baechuer/event-rest-api/internal/application/event"
	"github.com/baechuer/event-rest-api/internal/transport/http/hal"
)

// EventModel is an event with its links.
type EventModel struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	BeginEnrollmentDateTime time.Time `json:"beginEnrollmentDateTime"`
	CloseEnrollmentDateTime time.Time `json:"closeEnrollmentDateTime"`
	BeginEventDateTime      time.Time `json:"beginEventDateTime"`
	EndEventDateTime        time.Time `json:"endEventDateTime"`

	Location          string `json:"location"`
	BasePrice         int    `json:"basePrice"`
	MaxPrice          int    `json:"maxPrice"`
	LimitOfEnrollment int    `json:"limitOfEnrollment"`

	Offline     bool   `json:"offline"`
	Free        bool   `json:"free"`
	EventStatus string `json:"eventStatus"`

	Links hal.Links `json:"_links"`
}

type PageMeta struct {
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
}

type EventList struct {
	EventList []EventModel `json:"eventList"`
}

type PagedModel struct {
	Embedded EventList `json:"_embedded"`
	Links    hal.Links `json:"_links"`
	Page     PageMeta  `json:"page"`
}

type ErrorsModel struct {
	Errors event.Violations `json:"errors"`
	Links  hal.Links        `json:"_links"`
}

type IndexModel struct {
	Links hal.Links `json:"_links"`
}
