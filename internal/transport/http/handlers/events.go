package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/event-rest-api/internal/application/event"
	"github.com/baechuer/event-rest-api/internal/metrics"
	"github.com/baechuer/event-rest-api/internal/transport/http/dto"
	"github.com/baechuer/event-rest-api/internal/transport/http/hal"
	"github.com/baechuer/event-rest-api/internal/transport/http/response"
	"github.com/baechuer/event-rest-api/internal/transport/http/validate"
)

type EventsHandler struct {
	svc *event.Service
	origin hal.Origin
}

func NewEventsHandler(svc *event.Service, origin hal.Origin) *EventsHandler {
	return &EventsHandler{svc: svc, origin: origin}
}

func (h *EventsHandler) base(r *http.Request) string {
	return h.origin.BaseURL(r)
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	base := h.base(r)

	var req dto.EventReq
	decodeErr := validate.DecodeJSON(r, &req)

	ev, err := h.svc.Create(r.Context(), event.CreateCmd{
		Input:     req.ToCandidate(),
		DecodeErr: decodeErr,
	})
	if err != nil {
		metrics.RecordEventWrite("create", writeOutcome(err))
		response.Err(w, r, base, err)
		return
	}
	metrics.RecordEventWrite("create", "ok")

	links := hal.ForEvent(base, ev.ID, hal.OpCreate)
	w.Header().Set("Location", hal.EventHref(base, ev.ID))
	response.HAL(w, http.StatusCreated, dto.ToEventModel(ev, links))
}

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	base := h.base(r)

	req, err := validate.PageRequest(r.URL.Query())
	if err != nil {
		response.Err(w, r, base, err)
		return
	}

	page, err := h.svc.List(r.Context(), req)
	if err != nil {
		response.Err(w, r, base, err)
		return
	}
	response.HAL(w, http.StatusOK, dto.ToPagedModel(base, page))
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.ParseID(chi.URLParam(r, "id"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	base := h.base(r)

	ev, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, r, base, err)
		return
	}
	response.HAL(w, http.StatusOK, dto.ToEventModel(ev, hal.ForEvent(base, ev.ID, hal.OpGet)))
}

func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := validate.ParseID(chi.URLParam(r, "id"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	base := h.base(r)

	var req dto.EventReq
	decodeErr := validate.DecodeJSON(r, &req)

	ev, err := h.svc.Update(r.Context(), event.UpdateCmd{
		EventID:   id,
		Input:     req.ToCandidate(),
		DecodeErr: decodeErr,
	})
	if err != nil {
		metrics.RecordEventWrite("update", writeOutcome(err))
		response.Err(w, r, base, err)
		return
	}
	metrics.RecordEventWrite("update", "ok")

	response.HAL(w, http.StatusOK, dto.ToEventModel(ev, hal.ForEvent(base, ev.ID, hal.OpUpdate)))
}

func writeOutcome(err error) string {
	var verr *event.ValidationError
	if errors.As(err, &verr) {
		return "rejected"
	}
	return "error"
}
