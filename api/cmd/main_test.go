package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/event-rest-api/internal/config"
)

const body = `{
	"name": "Spring",
	"description": "REST API",
	"beginEnrollmentDateTime": "2021-09-09T20:30:00Z",
	"closeEnrollmentDateTime": "2021-09-10T20:30:00Z",
	"beginEventDateTime": "2021-09-11T20:30:00Z",
	"endEventDateTime": "2021-09-12T20:30:00Z",
	"basePrice": 100,
	"maxPrice": 200,
	"limitOfEnrollment": 100
}`

func TestNewApp(t *testing.T) {
	cfg := &config.Config{HTTPAddr: ":8081", PageDefaultSize: 20, PageMaxSize: 100}

	t.Run("postgres_schema_is_ensured", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS events").WillReturnResult(sqlmock.NewResult(0, 0))

		app, err := NewApp(context.Background(), cfg, db)
		require.NoError(t, err)
		assert.Equal(t, cfg.HTTPAddr, app.Server.Addr)
		assert.NotNil(t, app.Server.Handler)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("schema_failure_is_returned", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("permission denied"))

		_, err = NewApp(context.Background(), cfg, db)
		assert.Error(t, err)
	})

	t.Run("in_memory_with_redis_serves_requests", func(t *testing.T) {
		mr := miniredis.RunT(t)
		c := *cfg
		c.RedisURL = "redis://" + mr.Addr()
		c.RedisKeyPrefix = "t:"

		app, err := NewApp(context.Background(), &c, nil)
		require.NoError(t, err)
		defer app.Close()
		require.NotNil(t, app.Cache)

		rec := httptest.NewRecorder()
		app.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body)))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		loc := rec.Header().Get("Location")

		rec = httptest.NewRecorder()
		app.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, loc, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, mr.Keys(), "get populates the cache")
	})

	t.Run("unreachable_redis_fails", func(t *testing.T) {
		c := *cfg
		c.RedisURL = "redis://127.0.0.1:1"
		_, err := NewApp(context.Background(), &c, nil)
		assert.Error(t, err)
	})
}
