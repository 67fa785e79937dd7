//go:build unit

package event_test

import (
	"testing"
	"time"

	"event-reminder/internal/domain/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeConcert(t *testing.T) {
	profile := event.ProfileFor(event.CategoryConcert)

	t.Run("full row", func(t *testing.T) {
		ev, err := profile.Normalize([]string{
			"c-001", "Mastodon", "Teatro Leguía", "2025-09-12", "21:00", "Lima, Perú", "", "llevar tapones",
		})
		require.NoError(t, err)
		assert.Equal(t, "c-001", ev.ID())
		assert.Equal(t, event.CategoryConcert, ev.Category())
		assert.Equal(t, "2025-09-12", ev.Date())
		assert.Equal(t, "21:00", ev.TimeOfDay())
		assert.Equal(t, "Mastodon", ev.Field("band"))
		assert.Equal(t, "Teatro Leguía", ev.Field("venue"))
		assert.Equal(t, "Lima, Perú", ev.Field("location"))
		assert.Equal(t, "llevar tapones", ev.Field("notes"))
	})

	t.Run("minimum columns, optional notes default empty", func(t *testing.T) {
		ev, err := profile.Normalize([]string{"c-002", "Band", "Venue", "2025-09-12", "21:00", "Lima"})
		require.NoError(t, err)
		assert.Equal(t, "", ev.Field("notes"))
	})

	t.Run("short row rejected", func(t *testing.T) {
		_, err := profile.Normalize([]string{"c-003", "Band", "Venue", "2025-09-12", "21:00"})
		require.Error(t, err)
		assert.ErrorIs(t, err, event.ErrShortRow)
	})

	t.Run("empty event id rejected", func(t *testing.T) {
		_, err := profile.Normalize([]string{"  ", "Band", "Venue", "2025-09-12", "21:00", "Lima"})
		require.Error(t, err)
		assert.ErrorIs(t, err, event.ErrMissingEventID)
	})
}

func TestNormalizeInterview(t *testing.T) {
	profile := event.ProfileFor(event.CategoryInterview)

	t.Run("full row", func(t *testing.T) {
		ev, err := profile.Normalize([]string{
			"i-001", "Acme", "Backend Engineer", "2025-10-01", "10:30", "María", "técnica", "", "repasar SQL",
		})
		require.NoError(t, err)
		assert.Equal(t, "Acme", ev.Field("company"))
		assert.Equal(t, "Backend Engineer", ev.Field("position"))
		assert.Equal(t, "María", ev.Field("interviewer"))
		assert.Equal(t, "técnica", ev.Field("stage"))
		assert.Equal(t, "repasar SQL", ev.Field("prep_notes"))
	})

	t.Run("six columns is short for interviews", func(t *testing.T) {
		_, err := profile.Normalize([]string{"i-002", "Acme", "Role", "2025-10-01", "10:30", "María"})
		assert.ErrorIs(t, err, event.ErrShortRow)
	})
}

func TestNormalizeStudy(t *testing.T) {
	profile := event.ProfileFor(event.CategoryStudy)

	ev, err := profile.Normalize([]string{
		"s-001", "Distributed Systems", "Consensus", "2025-03-10", "09:00", "2h", "alta", "MIT 6.824 notes",
	})
	require.NoError(t, err)
	assert.Equal(t, "Distributed Systems", ev.Field("course"))
	assert.Equal(t, "Consensus", ev.Field("topic"))
	assert.Equal(t, "2h", ev.Field("duration"))
	assert.Equal(t, "alta", ev.Field("priority"))
	assert.Equal(t, "MIT 6.824 notes", ev.Field("resources"))

	_, err = profile.Normalize([]string{"s-002", "Course", "Topic", "2025-03-10", "09:00"})
	assert.ErrorIs(t, err, event.ErrShortRow)
}

func TestStartsAt(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	profile := event.ProfileFor(event.CategoryConcert)

	tests := []struct {
		name    string
		date    string
		time    string
		want    time.Time
		wantErr bool
	}{
		{
			name: "valid date and time",
			date: "2025-09-12", time: "21:00",
			want: time.Date(2025, 9, 12, 21, 0, 0, 0, loc),
		},
		{
			name: "padded cells are trimmed",
			date: " 2025-09-12 ", time: " 21:00 ",
			want: time.Date(2025, 9, 12, 21, 0, 0, 0, loc),
		},
		{name: "missing time", date: "2025-09-12", time: "", wantErr: true},
		{name: "missing date", date: "", time: "21:00", wantErr: true},
		{name: "garbage date", date: "next friday", time: "21:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := profile.Normalize([]string{"c-1", "Band", "Venue", tt.date, tt.time, "Lima"})
			require.NoError(t, err)

			start, err := ev.StartsAt(loc)
			if tt.wantErr {
				assert.ErrorIs(t, err, event.ErrNoSchedule)
				return
			}
			require.NoError(t, err)
			assert.True(t, start.Equal(tt.want), "got %v, want %v", start, tt.want)
		})
	}
}
