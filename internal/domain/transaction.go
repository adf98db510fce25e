package domain

import "time"

// Transaction Model
//
// One recorded asset sale. Seller and buyer are nullable because historical
// sales survive the deletion of either party.
type Transaction struct {
	TransactionID string    `gorm:"primaryKey;size:66"`   // 0x + 64 hex chars
	AssetID       uint      `gorm:"index;not null"`       // Asset that changed hands
	SellerAddress *string   `gorm:"size:42;index"`        // Seller wallet, NULL after party deletion
	BuyerAddress  *string   `gorm:"size:42;index"`        // Buyer wallet, NULL after party deletion
	Price         float64   `gorm:"not null"`             // Sale price, always positive
	Currency      string    `gorm:"size:10;default:MANA"` // Currency label
	Timestamp     time.Time // When the sale was recorded
}
