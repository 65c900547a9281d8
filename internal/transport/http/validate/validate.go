package validate

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/baechuer/event-rest-api/internal/application/event"
)

const maxBodyBytes = 1 << 20

var (
	ErrEmptyBody    = errors.New("request body is empty")
	ErrTrailingData = errors.New("request body must contain a single JSON value")
)

// DecodeJSON reads exactly one JSON value. Unknown fields are ignored so
// clients can echo back server-controlled properties.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}

// ParseID accepts positive decimal event ids only.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// PageRequest reads page, size and sort. Unparsable page or size values
// fall back to defaults; an unknown sort property is an error.
func PageRequest(q url.Values) (event.PageRequest, error) {
	var req event.PageRequest
	if n, err := strconv.Atoi(q.Get("page")); err == nil {
		req.Number = n
	}
	if n, err := strconv.Atoi(q.Get("size")); err == nil {
		req.Size = n
	}
	for _, raw := range q["sort"] {
		orders, err := event.ParseSort(raw)
		if err != nil {
			return event.PageRequest{}, err
		}
		req.Sort = append(req.Sort, orders...)
	}
	return req, nil
}
