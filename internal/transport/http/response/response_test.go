package response

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/event-rest-api/internal/application/event"
	"github.com/baechuer/event-rest-api/internal/domain"
	appctx "github.com/baechuer/event-rest-api/internal/pkg/context"
	"github.com/baechuer/event-rest-api/internal/transport/http/dto"
	"github.com/baechuer/event-rest-api/internal/transport/http/hal"
)

func TestErr(t *testing.T) {
	t.Run("maps_app_error_to_envelope", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
			wantCode   string
		}{
			{"validation", domain.ErrValidation("bad sort"), http.StatusBadRequest, "validation_error"},
			{"invalid_state", domain.ErrInvalidState("corrupt"), http.StatusConflict, "invalid_state"},
			{"generic_error", errors.New("db crash"), http.StatusInternalServerError, "internal_error"},
			{"nil_error", nil, http.StatusInternalServerError, "internal_error"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rr := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
				req = req.WithContext(appctx.WithRequestID(context.Background(), "rid-1"))

				Err(rr, req, "http://example.com", tt.err)

				assert.Equal(t, tt.wantStatus, rr.Code)
				var body ErrorBody
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.Error.Code)
				assert.Equal(t, "rid-1", body.Error.RequestID)
			})
		}
	})

	t.Run("internal_details_are_not_leaked", func(t *testing.T) {
		rr := httptest.NewRecorder()
		Err(rr, httptest.NewRequest(http.MethodGet, "/", nil), "", errors.New("password=hunter2"))
		assert.NotContains(t, rr.Body.String(), "hunter2")
	})

	t.Run("not_found_has_no_body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		err := fmt.Errorf("lookup: %w", domain.ErrNotFound("event not found"))
		Err(rr, httptest.NewRequest(http.MethodGet, "/events/9", nil), "http://h", err)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Empty(t, rr.Body.Bytes())
	})

	t.Run("validation_error_renders_violations", func(t *testing.T) {
		rr := httptest.NewRecorder()
		verr := &event.ValidationError{
			Phase: event.PhaseBusiness,
			Violations: event.Violations{
				{Field: "basePrice", ObjectName: "event", Code: "wrongValue", DefaultMessage: "basePrice is wrong", RejectedValue: 10000},
				{Field: "maxPrice", ObjectName: "event", Code: "wrongValue", DefaultMessage: "maxPrice is wrong", RejectedValue: 200},
			},
		}
		Err(rr, httptest.NewRequest(http.MethodPost, "/events", nil), "http://h", verr)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, hal.MediaType, rr.Header().Get("Content-Type"))

		var body dto.ErrorsModel
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.Len(t, body.Errors, 2)
		assert.Equal(t, "basePrice", body.Errors[0].Field)
		assert.Equal(t, "wrongValue", body.Errors[0].Code)
		href, ok := body.Links.Href(hal.RelIndex)
		assert.True(t, ok)
		assert.Equal(t, "http://h/", href)
	})
}

func TestHAL(t *testing.T) {
	rr := httptest.NewRecorder()
	HAL(rr, http.StatusCreated, dto.IndexModel{Links: hal.Index("http://h")})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/hal+json;charset=UTF-8", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"_links":{"self":{"href":"http://h/"},"events":{"href":"http://h/events"}}}`, rr.Body.String())
}

func TestData(t *testing.T) {
	rr := httptest.NewRecorder()
	Data(rr, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))

	var env Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Equal(t, "ok", env.Data.(map[string]any)["status"])
}
