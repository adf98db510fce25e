package domain

import "time"

// UserProfile Model
type UserProfile struct {
	WalletAddress string     `gorm:"primaryKey;size:42"` // Primary key, 0x + 40 hex chars
	Username      string     `gorm:"unique;not null"`    // Unique username
	Password      string     `gorm:"not null"`           // Hashed password
	Role          string     `gorm:"default:user"`       // Role: user or admin
	JoinDate      time.Time  `gorm:"autoCreateTime"`     // Set when the profile is created
	LastSeen      *time.Time // Updated on login, nullable for never-seen profiles
}
