package ledger

import (
	"errors" // Sentinel error checks
	"time"   // Schedule validation

	"genesis_city/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// RescheduleEvent moves an event to a new time window. The window must be
// well-formed (end after start) and the new start strictly in the future at
// the moment of invocation; either violation is rejected before any statement
// runs. Attendance and votes are unaffected.
func (s *Session) RescheduleEvent(eventID uint, newStart, newEnd time.Time) error {
	// Local validation before any statement runs
	if !newEnd.After(newStart) {
		return Validation("end must be after start")
	}
	if !newStart.After(time.Now()) {
		return Validation("new start must be in the future")
	}
	err := s.Transact(func(tx *gorm.DB) error {
		// The event must exist
		var ev domain.Event
		if err := tx.Where("event_id = ?", eventID).First(&ev).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFound("event")
			}
			return queryErr(err)
		}
		// Single update of both timestamps
		res := tx.Model(&domain.Event{}).
			Where("event_id = ?", eventID).
			Updates(map[string]any{
				"start_timestamp": newStart,
				"end_timestamp":   newEnd,
			})
		if res.Error != nil {
			return classifyWrite(res.Error)
		}
		return nil
	})
	if err != nil {
		return err
	}
	// Log the committed reschedule
	logrus.WithFields(logrus.Fields{
		"event_id": eventID,  // Rescheduled event
		"start":    newStart, // New start timestamp
		"end":      newEnd,   // New end timestamp
	}).Info("Event rescheduled")
	return nil
}
