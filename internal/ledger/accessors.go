package ledger

import (
	"errors" // Sentinel error checks

	"genesis_city/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Entity accessors: pure reads used to validate preconditions before a
// mutation. Each takes the handle it should read through, so an operation can
// run them inside its own transaction for a consistent view. Zero rows is a
// not-found signal, never a query failure.

// FindUserByWallet looks a user profile up by wallet address
func FindUserByWallet(db *gorm.DB, wallet string) (*domain.UserProfile, error) {
	var user domain.UserProfile
	if err := db.Where("wallet_address = ?", wallet).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("user")
		}
		return nil, queryErr(err)
	}
	return &user, nil
}

// FindAssetByID looks a digital asset up by its id
func FindAssetByID(db *gorm.DB, assetID uint) (*domain.DigitalAsset, error) {
	var asset domain.DigitalAsset
	if err := db.Where("asset_id = ?", assetID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("asset")
		}
		return nil, queryErr(err)
	}
	return &asset, nil
}

// LandParcelsOwnedBy returns every land parcel currently owned by the wallet,
// ordered by asset id. An empty result is not an error.
func LandParcelsOwnedBy(db *gorm.DB, wallet string) ([]domain.LandParcel, error) {
	var parcels []domain.LandParcel
	err := db.
		Joins("JOIN digital_assets ON digital_assets.asset_id = land_parcels.asset_id").
		Where("digital_assets.owner_address = ?", wallet).
		Order("land_parcels.asset_id").
		Find(&parcels).Error
	if err != nil {
		return nil, queryErr(err)
	}
	return parcels, nil
}
