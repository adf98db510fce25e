package ledger

import (
	"fmt"  // Candidate list rendering
	"time" // Establishment date

	"genesis_city/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// BusinessRegistration echoes the committed business back to the caller
type BusinessRegistration struct {
	BusinessID      uint      `json:"business_id"`      // Newly assigned id
	BusinessName    string    `json:"business_name"`    // Echoed name
	BusinessType    string    `json:"business_type"`    // Echoed type
	OwnerAddress    string    `json:"owner_address"`    // Echoed owner wallet
	ParcelID        uint      `json:"parcel_id"`        // Parcel chosen as the site
	DateEstablished time.Time `json:"date_established"` // Establishment date
}

// RegisterBusiness registers a new business on a land parcel the owner holds.
// The owner must exist and own at least one parcel. A supplied parcel id must
// belong to the owner; with no supplied id the operation only proceeds when
// the choice is unambiguous, it never picks one of several parcels itself.
// All checks and the insert run inside one transaction.
func (s *Session) RegisterBusiness(name, businessType, owner string, parcelID *uint) (*BusinessRegistration, error) {
	// Local validation before any statement runs
	if name == "" || businessType == "" || owner == "" {
		return nil, Validation("name, type and owner are required")
	}
	var out *BusinessRegistration
	err := s.Transact(func(tx *gorm.DB) error {
		// The owner must be a known user
		if _, err := FindUserByWallet(tx, owner); err != nil {
			return err
		}
		// The owner must hold land to register a business on
		parcels, err := LandParcelsOwnedBy(tx, owner)
		if err != nil {
			return err
		}
		if len(parcels) == 0 {
			return Precondition("no land owned")
		}
		// Resolve the site parcel
		var site uint
		switch {
		case parcelID != nil:
			// A supplied parcel must be in the owned set
			for _, p := range parcels {
				if p.AssetID == *parcelID {
					site = p.AssetID
					break
				}
			}
			if site == 0 {
				return Precondition("parcel not owned")
			}
		case len(parcels) == 1:
			// Unambiguous, use the only parcel
			site = parcels[0].AssetID
		default:
			// Ownership spans several parcels, the caller must choose
			ids := make([]uint, len(parcels))
			for i, p := range parcels {
				ids[i] = p.AssetID
			}
			return Precondition(fmt.Sprintf("parcel choice required, owned parcels: %v", ids))
		}
		// Insert the business with today as the establishment date
		now := time.Now()
		biz := domain.Business{
			BusinessName:    name,
			BusinessType:    businessType,
			OwnerAddress:    &owner,
			DateEstablished: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
			ParcelID:        site,
		}
		if err := tx.Create(&biz).Error; err != nil {
			return classifyWrite(err)
		}
		out = &BusinessRegistration{
			BusinessID:      biz.BusinessID,
			BusinessName:    biz.BusinessName,
			BusinessType:    biz.BusinessType,
			OwnerAddress:    owner,
			ParcelID:        biz.ParcelID,
			DateEstablished: biz.DateEstablished,
		}
		return nil
	})
	if err != nil {
		// Log the failure with context
		logrus.WithFields(logrus.Fields{
			"owner": owner,       // Owner wallet
			"name":  name,        // Business name
			"error": err.Error(), // Classified error message
		}).Warn("Business registration rejected")
		return nil, err
	}
	// Log the committed registration
	logrus.WithFields(logrus.Fields{
		"business_id": out.BusinessID,   // New business id
		"owner":       out.OwnerAddress, // Owner wallet
		"parcel_id":   out.ParcelID,     // Site parcel
	}).Info("Business registered")
	return out, nil
}
