package domain

// SceneContent Model
type SceneContent struct {
	ContentID      uint    `gorm:"primaryKey"`        // Primary key
	ContentName    string  `gorm:"size:100;not null"` // Display name of the scene piece
	CreatorAddress *string `gorm:"size:42;index"`     // Creator wallet, NULL when orphaned
	ParcelID       uint    // Parcel the content is placed on
}
