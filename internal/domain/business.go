package domain

import "time"

// Business Model
//
// OwnerAddress is nullable: a business whose owner was deleted stays on the
// books in an abandoned state.
type Business struct {
	BusinessID      uint      `gorm:"primaryKey"`        // Primary key
	BusinessName    string    `gorm:"size:100;not null"` // Display name
	BusinessType    string    `gorm:"size:50;not null"`  // Shop, Gallery, Venue, Service
	OwnerAddress    *string   `gorm:"size:42;index"`     // Owner wallet, NULL when abandoned
	DateEstablished time.Time // Date the business was registered
	ParcelID        uint      // Land parcel the business sits on
}
