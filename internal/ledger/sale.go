package ledger

import (
	"time" // Sale timestamp

	"genesis_city/internal/domain" // Importing domain models
	"genesis_city/internal/utils"  // Token generation

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// SaleCurrency is the fixed currency label recorded on every sale
const SaleCurrency = "MANA"

// RecordSale records an asset sale and atomically transfers ownership to the
// buyer. The seller must be the asset's current owner at the instant the sale
// is recorded; no external reader ever sees the asset reassigned without the
// transaction row, or the row without the reassignment.
//
// The ownership transfer is a guarded update whose predicate re-asserts the
// seller inside the transaction, so two concurrent sales of the same asset
// cannot both pass the check even at read-committed isolation.
func (s *Session) RecordSale(assetID uint, seller, buyer string, price float64) (*domain.Transaction, error) {
	// Local validation before any statement runs
	if assetID == 0 || seller == "" || buyer == "" {
		return nil, Validation("asset, seller and buyer are required")
	}
	if price <= 0 {
		return nil, Validation("price must be positive")
	}
	var record *domain.Transaction
	err := s.Transact(func(tx *gorm.DB) error {
		// The asset must exist
		asset, err := FindAssetByID(tx, assetID)
		if err != nil {
			return err
		}
		// The seller must be the current owner
		if asset.OwnerAddress != seller {
			return Precondition("seller does not own asset")
		}
		// The buyer must be a known user
		if _, err := FindUserByWallet(tx, buyer); err != nil {
			return err
		}
		// Record the sale with a fresh 0x + 64 hex transaction id
		t := domain.Transaction{
			TransactionID: utils.NewTransactionID(),
			AssetID:       assetID,
			SellerAddress: &seller,
			BuyerAddress:  &buyer,
			Price:         price,
			Currency:      SaleCurrency,
			Timestamp:     time.Now(),
		}
		if err := tx.Create(&t).Error; err != nil {
			return classifyWrite(err)
		}
		// Transfer ownership, re-asserting the seller in the predicate
		res := tx.Model(&domain.DigitalAsset{}).
			Where("asset_id = ? AND owner_address = ?", assetID, seller).
			Update("owner_address", buyer)
		if res.Error != nil {
			return classifyWrite(res.Error)
		}
		if res.RowsAffected == 0 {
			// The owner changed between the check and the transfer
			return Precondition("seller does not own asset")
		}
		record = &t
		return nil
	})
	if err != nil {
		// Log the failure with context, ownership is unchanged
		logrus.WithFields(logrus.Fields{
			"asset_id": assetID,     // Asset offered for sale
			"seller":   seller,      // Supplied seller wallet
			"buyer":    buyer,       // Supplied buyer wallet
			"error":    err.Error(), // Classified error message
		}).Warn("Sale rejected")
		return nil, err
	}
	// Log the committed sale
	logrus.WithFields(logrus.Fields{
		"transaction_id": record.TransactionID, // Recorded sale id
		"asset_id":       assetID,              // Asset that changed hands
		"seller":         seller,               // Previous owner
		"buyer":          buyer,                // New owner
		"price":          price,                // Sale price
		"currency":       SaleCurrency,         // Currency label
	}).Info("Sale recorded")
	return record, nil
}
