package dto

// EventReq is the body of POST /events and PUT /events/{id}.
// id, eventStatus, free and offline are server-controlled and ignored if sent.
type EventReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	BeginEnrollmentDateTime *DateTime `json:"beginEnrollmentDateTime"`
	CloseEnrollmentDateTime *DateTime `json:"closeEnrollmentDateTime"`
	BeginEventDateTime      *DateTime `json:"beginEventDateTime"`
	EndEventDateTime        *DateTime `json:"endEventDateTime"`

	Location          string `json:"location"`
	BasePrice         int    `json:"basePrice"`
	MaxPrice          int    `json:"maxPrice"`
	LimitOfEnrollment int    `json:"limitOfEnrollment"`
}
