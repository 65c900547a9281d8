package middleware

import (
	"net/http"

	"github.com/google/uuid"

	appctx "github.com/baechuer/event-rest-api/internal/pkg/context"
)

const HeaderXRequestID = "X-Request-Id"

// max length accepted from a client-supplied request id
const maxRequestIDLen = 128

func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(HeaderXRequestID)
		if reqID == "" || len(reqID) > maxRequestIDLen {
			reqID = uuid.NewString()
		}

		w.Header().Set(HeaderXRequestID, reqID)
		next.ServeHTTP(w, r.WithContext(appctx.WithRequestID(r.Context(), reqID)))
	})
}
