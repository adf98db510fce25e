package ledger

import (
	"time" // Report windows

	"genesis_city/internal/domain" // Importing domain models
)

// Fixed report queries. Each returns a typed row schema instead of whatever
// the query happens to produce, keeping the reader decoupled from display
// formatting. Reads run outside any transaction and never couple to writes.

// ProposalRow is one DAO proposal in the proposals-by-user report
type ProposalRow struct {
	ProposalID     uint   `json:"proposal_id"`     // Proposal id
	Title          string `json:"title"`           // Proposal title
	Status         string `json:"status"`          // Proposal status
	CreatorAddress string `json:"creator_address"` // Creator wallet
}

// ProposalsByUser lists every DAO proposal created by the wallet, newest first
func (s *Session) ProposalsByUser(wallet string) ([]ProposalRow, error) {
	if wallet == "" {
		return nil, Validation("wallet address is required")
	}
	var rows []ProposalRow
	err := s.db.Model(&domain.DAOProposal{}).
		Where("creator_address = ?", wallet).
		Order("proposal_id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, queryErr(err)
	}
	return rows, nil
}

// BusinessRow is one business in the businesses-after-date report. Username
// is NULL for abandoned businesses.
type BusinessRow struct {
	BusinessID      uint      `json:"business_id"`      // Business id
	BusinessName    string    `json:"business_name"`    // Display name
	BusinessType    string    `json:"business_type"`    // Business type
	DateEstablished time.Time `json:"date_established"` // Establishment date
	OwnerAddress    *string   `json:"owner_address"`    // Owner wallet, NULL when abandoned
	Username        *string   `json:"username"`         // Owner username, NULL when abandoned
}

// BusinessesAfter lists businesses established strictly after the given date,
// oldest first, with the owner's username joined in
func (s *Session) BusinessesAfter(date time.Time) ([]BusinessRow, error) {
	var rows []BusinessRow
	err := s.db.Table("businesses b").
		Select("b.business_id, b.business_name, b.business_type, b.date_established, b.owner_address, u.username").
		Joins("LEFT JOIN user_profiles u ON b.owner_address = u.wallet_address").
		Where("b.date_established > ?", date).
		Order("b.date_established ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, queryErr(err)
	}
	return rows, nil
}

// SalesSummary aggregates land sales over a window. All money figures are
// zero when the window holds no sales.
type SalesSummary struct {
	TotalSales  int64   `json:"total_sales"`  // Number of land sales
	TotalVolume float64 `json:"total_volume"` // Sum of prices
	AvgPrice    float64 `json:"avg_price"`    // Average price
	MinPrice    float64 `json:"min_price"`    // Lowest price
	MaxPrice    float64 `json:"max_price"`    // Highest price
}

// SalesWindow is the default look-back for the land sales report
const SalesWindow = 90 * 24 * time.Hour

// LandSalesSummary aggregates MANA-denominated land sales since the given
// instant
func (s *Session) LandSalesSummary(since time.Time) (*SalesSummary, error) {
	var summary SalesSummary
	err := s.db.Table("transactions t").
		Select("COUNT(*) AS total_sales, COALESCE(SUM(t.price), 0) AS total_volume, COALESCE(AVG(t.price), 0) AS avg_price, COALESCE(MIN(t.price), 0) AS min_price, COALESCE(MAX(t.price), 0) AS max_price").
		Joins("JOIN land_parcels lp ON t.asset_id = lp.asset_id").
		Where("t.timestamp >= ? AND t.currency = ?", since, SaleCurrency).
		Scan(&summary).Error
	if err != nil {
		return nil, queryErr(err)
	}
	return &summary, nil
}

// EventRow is one event in the keyword search report. Organizer and venue
// columns are NULL when the event is orphaned or has no venue parcel.
type EventRow struct {
	EventID          uint      `json:"event_id"`          // Event id
	EventName        string    `json:"event_name"`        // Display name
	StartTimestamp   time.Time `json:"start_timestamp"`   // Scheduled start
	EndTimestamp     time.Time `json:"end_timestamp"`     // Scheduled end
	OrganizerAddress *string   `json:"organizer_address"` // Organizer wallet
	OrganizerName    *string   `json:"organizer_name"`    // Organizer username
	XCoordinate      *int      `json:"x_coordinate"`      // Venue X coordinate
	YCoordinate      *int      `json:"y_coordinate"`      // Venue Y coordinate
	DistrictName     *string   `json:"district_name"`     // Venue district
}

// EventsByKeyword lists events whose name contains the keyword, newest first,
// with organizer and venue details joined in
func (s *Session) EventsByKeyword(keyword string) ([]EventRow, error) {
	if keyword == "" {
		return nil, Validation("keyword is required")
	}
	var rows []EventRow
	err := s.db.Table("events e").
		Select("e.event_id, e.event_name, e.start_timestamp, e.end_timestamp, e.organizer_address, u.username AS organizer_name, lp.x_coordinate, lp.y_coordinate, lp.district_name").
		Joins("LEFT JOIN user_profiles u ON e.organizer_address = u.wallet_address").
		Joins("LEFT JOIN land_parcels lp ON e.scene_parcel_id = lp.asset_id").
		Where("e.event_name LIKE ?", "%"+keyword+"%").
		Order("e.start_timestamp DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, queryErr(err)
	}
	return rows, nil
}

// InfluenceRow is one voter in the influence ranking. The score weighs land
// ten times heavier than votes cast.
type InfluenceRow struct {
	WalletAddress    string `json:"wallet_address"`     // Voter wallet
	Username         string `json:"username"`           // Voter username
	LandParcelsOwned int64  `json:"land_parcels_owned"` // Distinct land parcels held
	VotesCast        int64  `json:"votes_cast"`         // Distinct proposals voted on
	InfluenceScore   int64  `json:"influence_score"`    // land * 10 + votes
}

// InfluenceReportLimit caps the voter influence ranking
const InfluenceReportLimit = 20

// VoterInfluence ranks users by influence score, strongest first, skipping
// users with neither land nor votes
func (s *Session) VoterInfluence(limit int) ([]InfluenceRow, error) {
	if limit <= 0 {
		limit = InfluenceReportLimit
	}
	var rows []InfluenceRow
	err := s.db.Table("user_profiles u").
		Select("u.wallet_address, u.username, COUNT(DISTINCT lp.asset_id) AS land_parcels_owned, COUNT(DISTINCT v.proposal_id) AS votes_cast, COUNT(DISTINCT lp.asset_id) * 10 + COUNT(DISTINCT v.proposal_id) AS influence_score").
		Joins("LEFT JOIN digital_assets da ON u.wallet_address = da.owner_address").
		Joins("LEFT JOIN land_parcels lp ON da.asset_id = lp.asset_id").
		Joins("LEFT JOIN votes v ON u.wallet_address = v.voter_address").
		Group("u.wallet_address, u.username").
		Having("COUNT(DISTINCT lp.asset_id) > 0 OR COUNT(DISTINCT v.proposal_id) > 0").
		Order("influence_score DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, queryErr(err)
	}
	return rows, nil
}

// SummaryStats holds the headline entity counts of the world
type SummaryStats struct {
	Users      int64 `json:"users"`      // Total user profiles
	Assets     int64 `json:"assets"`     // Total digital assets
	Businesses int64 `json:"businesses"` // Total businesses
	Events     int64 `json:"events"`     // Total events
}

// Summary counts users, assets, businesses and events
func (s *Session) Summary() (*SummaryStats, error) {
	var stats SummaryStats
	if err := s.db.Model(&domain.UserProfile{}).Count(&stats.Users).Error; err != nil {
		return nil, queryErr(err)
	}
	if err := s.db.Model(&domain.DigitalAsset{}).Count(&stats.Assets).Error; err != nil {
		return nil, queryErr(err)
	}
	if err := s.db.Model(&domain.Business{}).Count(&stats.Businesses).Error; err != nil {
		return nil, queryErr(err)
	}
	if err := s.db.Model(&domain.Event{}).Count(&stats.Events).Error; err != nil {
		return nil, queryErr(err)
	}
	return &stats, nil
}
