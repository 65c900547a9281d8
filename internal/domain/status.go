package domain

type EventStatus string

const (
	StatusDraft           EventStatus = "DRAFT"
	StatusPublished       EventStatus = "PUBLISHED"
	StatusBeganEnrollment EventStatus = "BEGAN_ENROLLMENT"
)

func (s EventStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished || s == StatusBeganEnrollment
}
