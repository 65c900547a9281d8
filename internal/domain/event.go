package domain

import (
	"strings"
	"time"
)

type Event struct {
	ID          int64
	Name        string
	Description string

	BeginEnrollmentDateTime time.Time
	CloseEnrollmentDateTime time.Time
	BeginEventDateTime      time.Time
	EndEventDateTime        time.Time

	Location          string // empty = online
	BasePrice         int
	MaxPrice          int // 0 = no ceiling
	LimitOfEnrollment int

	// Derived, see Recompute.
	Offline bool
	Free    bool

	Status EventStatus
}

// Fields holds the caller-controlled attributes of an event.
// Identity, status and derived flags are deliberately absent.
type Fields struct {
	Name        string
	Description string

	BeginEnrollmentDateTime time.Time
	CloseEnrollmentDateTime time.Time
	BeginEventDateTime      time.Time
	EndEventDateTime        time.Time

	Location          string
	BasePrice         int
	MaxPrice          int
	LimitOfEnrollment int
}

// NewDraft builds an unsaved event from already validated input.
func NewDraft(f Fields) *Event {
	e := &Event{Status: StatusDraft}
	e.Apply(f)
	return e
}

// Apply overwrites every mutable attribute as given and recomputes the
// derived flags. ID and Status are left untouched.
func (e *Event) Apply(f Fields) {
	e.Name = f.Name
	e.Description = f.Description
	e.BeginEnrollmentDateTime = f.BeginEnrollmentDateTime.UTC()
	e.CloseEnrollmentDateTime = f.CloseEnrollmentDateTime.UTC()
	e.BeginEventDateTime = f.BeginEventDateTime.UTC()
	e.EndEventDateTime = f.EndEventDateTime.UTC()
	e.Location = f.Location
	e.BasePrice = f.BasePrice
	e.MaxPrice = f.MaxPrice
	e.LimitOfEnrollment = f.LimitOfEnrollment
	e.Recompute()
}

// Recompute refreshes Free and Offline from prices and location.
// It never fails; range checks belong to the validator.
func (e *Event) Recompute() {
	e.Free = e.BasePrice == 0 && e.MaxPrice == 0
	e.Offline = strings.TrimSpace(e.Location) != ""
}
