package ledger

import (
	"testing"
	"time"

	"genesis_city/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestRescheduleEvent(t *testing.T) {
	origStart := time.Now().Add(24 * time.Hour)
	origEnd := origStart.Add(2 * time.Hour)

	// timestampsUnchanged asserts the stored window still matches the seed
	timestampsUnchanged := func(t *testing.T, s *Session, eventID uint) {
		t.Helper()
		var ev domain.Event
		require.NoError(t, s.db.Where("event_id = ?", eventID).First(&ev).Error)
		require.WithinDuration(t, origStart, ev.StartTimestamp, time.Second)
		require.WithinDuration(t, origEnd, ev.EndTimestamp, time.Second)
	}

	t.Run("valid window moves the event", func(t *testing.T) {
		s := newTestSession(t)
		seedEvent(t, s, 1, "Rave", nil, origStart, origEnd)

		newStart := time.Now().Add(48 * time.Hour)
		newEnd := newStart.Add(3 * time.Hour)
		require.NoError(t, s.RescheduleEvent(1, newStart, newEnd))

		var ev domain.Event
		require.NoError(t, s.db.Where("event_id = ?", 1).First(&ev).Error)
		require.WithinDuration(t, newStart, ev.StartTimestamp, time.Second)
		require.WithinDuration(t, newEnd, ev.EndTimestamp, time.Second)
	})

	t.Run("end before start is a validation failure", func(t *testing.T) {
		s := newTestSession(t)
		seedEvent(t, s, 1, "Rave", nil, origStart, origEnd)

		newStart := time.Now().Add(48 * time.Hour)
		err := s.RescheduleEvent(1, newStart, newStart.Add(-time.Hour))
		require.Equal(t, KindValidation, KindOf(err))
		timestampsUnchanged(t, s, 1)
	})

	t.Run("end equal to start is a validation failure", func(t *testing.T) {
		s := newTestSession(t)
		seedEvent(t, s, 1, "Rave", nil, origStart, origEnd)

		newStart := time.Now().Add(48 * time.Hour)
		err := s.RescheduleEvent(1, newStart, newStart)
		require.Equal(t, KindValidation, KindOf(err))
		timestampsUnchanged(t, s, 1)
	})

	t.Run("start in the past is a validation failure", func(t *testing.T) {
		s := newTestSession(t)
		seedEvent(t, s, 1, "Rave", nil, origStart, origEnd)

		pastStart := time.Now().Add(-time.Hour)
		err := s.RescheduleEvent(1, pastStart, pastStart.Add(2*time.Hour))
		require.Equal(t, KindValidation, KindOf(err))
		require.EqualError(t, err, "new start must be in the future")
		timestampsUnchanged(t, s, 1)
	})

	t.Run("missing event", func(t *testing.T) {
		s := newTestSession(t)
		newStart := time.Now().Add(time.Hour)
		err := s.RescheduleEvent(404, newStart, newStart.Add(time.Hour))
		require.Equal(t, KindNotFound, KindOf(err))
		require.EqualError(t, err, "event not found")
	})
}
