package domain

// DigitalAsset Model
//
// The general unit of ownership. An asset has at most one specialization row:
// either a LandParcel or a Wearable, never both. Assets are never deleted by
// this layer, and the owner column is deliberately not a foreign key: after a
// user cascade delete the wallet string remains on the asset.
type DigitalAsset struct {
	AssetID      uint        `gorm:"primaryKey"`         // Primary key
	TokenURI     string      `gorm:"size:255"`           // Metadata URI for the asset
	OwnerAddress string      `gorm:"size:42;index"`      // Current owner wallet
	LandParcel   *LandParcel `gorm:"foreignKey:AssetID"` // Land specialization, if any
	Wearable     *Wearable   `gorm:"foreignKey:AssetID"` // Wearable specialization, if any
}

// LandParcel Model
type LandParcel struct {
	AssetID      uint   `gorm:"primaryKey"` // Shared key with DigitalAsset
	XCoordinate  int    // Parcel X coordinate
	YCoordinate  int    // Parcel Y coordinate
	DistrictName string `gorm:"size:100"` // District the parcel belongs to
}

// Wearable Model
type Wearable struct {
	AssetID  uint   `gorm:"primaryKey"` // Shared key with DigitalAsset
	Category string `gorm:"size:50"`    // Wearable category
	Rarity   string `gorm:"size:50"`    // Rarity tier
}
