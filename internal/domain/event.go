package domain

import "time"

// Event Model
type Event struct {
	EventID          uint      `gorm:"primaryKey"`        // Primary key
	EventName        string    `gorm:"size:100;not null"` // Display name
	OrganizerAddress *string   `gorm:"size:42;index"`     // Organizer wallet, NULL when orphaned
	StartTimestamp   time.Time // Scheduled start, always before the end
	EndTimestamp     time.Time // Scheduled end
	SceneParcelID    *uint     // Venue land parcel, if the event has one
}

// Attendance Model, composite key of attendee and event
type Attendance struct {
	WalletAddress string `gorm:"primaryKey;size:42"` // Attendee wallet
	EventID       uint   `gorm:"primaryKey"`         // Attended event
}

// TableName keeps the legacy schema name for attendance records
func (Attendance) TableName() string {
	return "attends"
}
