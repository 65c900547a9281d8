package handlers

import (
	"net/http"

	"github.com/baechuer/event-rest-api/internal/transport/http/dto"
	"github.com/baechuer/event-rest-api/internal/transport/http/hal"
	"github.com/baechuer/event-rest-api/internal/transport/http/response"
)

type IndexHandler struct {
	origin hal.Origin
}

func NewIndexHandler(origin hal.Origin) *IndexHandler {
	return &IndexHandler{origin: origin}
}

func (h *IndexHandler) Index(w http.ResponseWriter, r *http.Request) {
	base := h.origin.BaseURL(r)
	response.HAL(w, http.StatusOK, dto.IndexModel{Links: hal.Index(base)})
}
