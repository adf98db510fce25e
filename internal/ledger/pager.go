package ledger

import (
	"time" // Row timestamps

	"gorm.io/gorm" // GORM ORM library
)

// DefaultPageSize is the page size used when the caller supplies none
const DefaultPageSize = 20

// Pager walks a fixed listing query one full page at a time. It is
// forward-only and not restartable: pages come back in order, a page is only
// fetched while the prior one was full-sized, and the first short or empty
// page ends the iteration. Re-issue the listing to start over.
type Pager struct {
	query    *gorm.DB // Listing query, cloned per page
	pageSize int      // Fixed page size
	offset   int      // Rows already consumed
	done     bool     // Set once a short page was seen
}

// newPager wraps a listing query
func newPager(query *gorm.DB, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{query: query, pageSize: pageSize}
}

// Seek positions the pager at a page boundary without walking prior pages.
// Page numbering starts at 1.
func (p *Pager) Seek(page int) {
	if page > 1 {
		p.offset = (page - 1) * p.pageSize
	}
}

// NextPage loads the next page into dest, a pointer to a row slice. It
// reports false once the listing is exhausted; a final partial page is still
// returned and ends the iteration.
func (p *Pager) NextPage(dest any) (bool, error) {
	if p.done {
		return false, nil
	}
	// Clone the query so offsets do not accumulate across calls
	res := p.query.Session(&gorm.Session{}).
		Offset(p.offset).
		Limit(p.pageSize).
		Find(dest)
	if res.Error != nil {
		p.done = true
		return false, queryErr(res.Error)
	}
	n := int(res.RowsAffected)
	p.offset += n
	if n < p.pageSize {
		p.done = true
	}
	if n == 0 {
		return false, nil
	}
	return true, nil
}

// Done reports whether the listing is exhausted
func (p *Pager) Done() bool {
	return p.done
}

// UserRow is one profile in the all-users browse listing
type UserRow struct {
	WalletAddress string     `json:"wallet_address"` // Wallet address
	Username      string     `json:"username"`       // Username
	JoinDate      time.Time  `json:"join_date"`      // Join date
	LastSeen      *time.Time `json:"last_seen"`      // Last login, NULL for never
}

// AllUsers pages through every user profile, newest joiners first
func (s *Session) AllUsers(pageSize int) *Pager {
	q := s.db.Table("user_profiles").
		Select("wallet_address, username, join_date, last_seen").
		Order("join_date DESC")
	return newPager(q, pageSize)
}

// AssetRow is one asset in the all-assets browse listing, with its
// specialization columns joined in. Coordinate columns are NULL for
// wearables; category and rarity are NULL for land.
type AssetRow struct {
	AssetID      uint    `json:"asset_id"`      // Asset id
	TokenURI     string  `json:"token_uri"`     // Metadata URI
	OwnerAddress string  `json:"owner_address"` // Current owner wallet
	AssetType    string  `json:"asset_type"`    // Land or Wearable
	XCoordinate  *int    `json:"x_coordinate"`  // Land X coordinate
	YCoordinate  *int    `json:"y_coordinate"`  // Land Y coordinate
	Category     *string `json:"category"`      // Wearable category
	Rarity       *string `json:"rarity"`        // Wearable rarity
}

// AllAssets pages through every digital asset in id order
func (s *Session) AllAssets(pageSize int) *Pager {
	q := s.db.Table("digital_assets da").
		Select("da.asset_id, da.token_uri, da.owner_address, CASE WHEN lp.asset_id IS NOT NULL THEN 'Land' ELSE 'Wearable' END AS asset_type, lp.x_coordinate, lp.y_coordinate, w.category, w.rarity").
		Joins("LEFT JOIN land_parcels lp ON da.asset_id = lp.asset_id").
		Joins("LEFT JOIN wearables w ON da.asset_id = w.asset_id").
		Order("da.asset_id")
	return newPager(q, pageSize)
}
