package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	tt, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("bad time %q: %v", s, err)
	}
	return tt.UTC()
}

func TestEvent_Recompute_Free(t *testing.T) {
	tests := []struct {
		name      string
		basePrice int
		maxPrice  int
		want      bool
	}{
		{"both_zero_is_free", 0, 0, true},
		{"base_price_set_is_not_free", 1, 0, false},
		{"max_price_set_is_not_free", 0, 1, false},
		{"both_set_is_not_free", 100, 200, false},
		{"negative_prices_are_not_free", -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Event{BasePrice: tt.basePrice, MaxPrice: tt.maxPrice}
			e.Recompute()
			assert.Equal(t, tt.want, e.Free)
		})
	}
}

func TestEvent_Recompute_Offline(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     bool
	}{
		{"location_set_is_offline", "Gangnam station", true},
		{"empty_location_is_online", "", false},
		{"blank_location_is_online", "   \t", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Event{Location: tt.location}
			e.Recompute()
			assert.Equal(t, tt.want, e.Offline)
		})
	}
}

func TestEvent_Recompute_ResetsStaleFlags(t *testing.T) {
	e := &Event{BasePrice: 10, Location: "", Free: true, Offline: true}
	e.Recompute()
	assert.False(t, e.Free)
	assert.False(t, e.Offline)
}

func TestNewDraft(t *testing.T) {
	f := Fields{
		Name:                    "  Spring  ",
		Description:             "REST API",
		BeginEnrollmentDateTime: mustTime(t, "2021-09-09T20:30:00Z"),
		CloseEnrollmentDateTime: mustTime(t, "2021-09-10T20:30:00Z"),
		BeginEventDateTime:      mustTime(t, "2021-09-11T20:30:00Z"),
		EndEventDateTime:        mustTime(t, "2021-09-12T20:30:00Z"),
		Location:                "Gangnam station",
		BasePrice:               100,
		MaxPrice:                200,
		LimitOfEnrollment:       100,
	}

	t.Run("starts_as_unsaved_draft", func(t *testing.T) {
		e := NewDraft(f)
		assert.Zero(t, e.ID)
		assert.Equal(t, StatusDraft, e.Status)
		assert.Equal(t, "  Spring  ", e.Name)
		assert.False(t, e.Free)
		assert.True(t, e.Offline)
	})

	t.Run("text_is_stored_as_given", func(t *testing.T) {
		g := f
		g.Description = " REST API\n"
		g.Location = "  Gangnam station "
		e := NewDraft(g)
		assert.Equal(t, " REST API\n", e.Description)
		assert.Equal(t, "  Gangnam station ", e.Location)
		assert.True(t, e.Offline)

		g.Location = "   "
		e.Apply(g)
		assert.Equal(t, "   ", e.Location)
		assert.False(t, e.Offline)
	})

	t.Run("apply_keeps_identity_and_status", func(t *testing.T) {
		e := NewDraft(f)
		e.ID = 7
		e.Status = StatusPublished

		g := f
		g.BasePrice, g.MaxPrice, g.Location = 0, 0, ""
		e.Apply(g)

		assert.Equal(t, int64(7), e.ID)
		assert.Equal(t, StatusPublished, e.Status)
		assert.True(t, e.Free)
		assert.False(t, e.Offline)
	})
}

func TestEventStatus_Valid(t *testing.T) {
	assert.True(t, StatusDraft.Valid())
	assert.True(t, StatusPublished.Valid())
	assert.True(t, StatusBeganEnrollment.Valid())
	assert.False(t, EventStatus("canceled").Valid())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrNotFound("event not found")))
	assert.False(t, IsNotFound(ErrValidation("bad")))
	assert.False(t, IsNotFound(nil))
}
