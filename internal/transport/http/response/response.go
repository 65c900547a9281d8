package response

import (
	"encoding/json"
	"errors"
	"net/http"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/event-rest-api/internal/application/event"
	"github.com/baechuer/event-rest-api/internal/domain"
	appctx "github.com/baechuer/event-rest-api/internal/pkg/context"
	"github.com/baechuer/event-rest-api/internal/transport/http/dto"
	"github.com/baechuer/event-rest-api/internal/transport/http/hal"
)

type Envelope struct {
	Data any `json:"data"`
}

type ErrorBody struct {
	Error ErrorPayload `json:"error"`
}

type ErrorPayload struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Meta      map[string]string `json:"meta,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// HAL writes a hypermedia representation.
func HAL(w http.ResponseWriter, status int, v any) {
	write(w, status, hal.MediaType, v)
}

// Data writes a plain JSON payload wrapped in {"data": ...}.
func Data(w http.ResponseWriter, status int, v any) {
	write(w, status, "application/json; charset=utf-8", Envelope{Data: v})
}

func Fail(w http.ResponseWriter, status int, code, message string, meta map[string]string, requestID string) {
	write(w, status, "application/json; charset=utf-8", ErrorBody{Error: ErrorPayload{
		Code:      code,
		Message:   message,
		Meta:      meta,
		RequestID: requestID,
	}})
}

func write(w http.ResponseWriter, status int, contentType string, v any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zlog.Error().Err(err).Msg("encode response")
	}
}

// Err maps an error to its HTTP form. Rejected writes get a violations body
// linking back to the index; a missing resource gets a bare 404.
func Err(w http.ResponseWriter, r *http.Request, base string, err error) {
	requestID := appctx.RequestID(r.Context())

	if err == nil {
		Fail(w, http.StatusInternalServerError, "internal_error", "unknown error", nil, requestID)
		return
	}

	var verr *event.ValidationError
	if errors.As(err, &verr) {
		HAL(w, http.StatusBadRequest, dto.ToErrorsModel(base, verr.Violations))
		return
	}

	if domain.IsNotFound(err) {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var ae *domain.AppError
	if errors.As(err, &ae) {
		Fail(w, statusFromCode(ae.Code), string(ae.Code), ae.Message, ae.Meta, requestID)
		return
	}

	// keep details in logs only
	zlog.Error().Err(err).Str("request_id", requestID).Msg("unhandled error")
	Fail(w, http.StatusInternalServerError, "internal_error", "internal error", nil, requestID)
}

func statusFromCode(code domain.ErrCode) int {
	switch code {
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
