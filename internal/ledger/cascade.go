package ledger

import (
	"genesis_city/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// stepAction is what a cascade step does to its matching rows
type stepAction string

const (
	stepDelete stepAction = "delete" // Hard-delete rows that have no meaning without the user
	stepClear  stepAction = "clear"  // Null the wallet reference, the row keeps its meaning
)

// cascadeStep is one dependent-row cleanup executed when a user is removed
type cascadeStep struct {
	Category string     // Key the affected-row count is reported under
	Action   stepAction // Delete or clear
	Model    any        // Table the step targets
	Column   string     // Wallet-bearing column the predicate matches
}

// userCascade is the ordered cleanup behind DeleteUserCascade. Votes,
// attendance and proposals are deleted outright; businesses, events, scene
// content and both sides of historical sales only lose the wallet reference.
// The transaction table appears twice because a user can sit on both sides of
// a past sale. Digital assets are deliberately absent, see DeleteUserCascade.
var userCascade = []cascadeStep{
	{"votes_deleted", stepDelete, &domain.Vote{}, "voter_address"},
	{"attendance_deleted", stepDelete, &domain.Attendance{}, "wallet_address"},
	{"proposals_deleted", stepDelete, &domain.DAOProposal{}, "creator_address"},
	{"businesses_abandoned", stepClear, &domain.Business{}, "owner_address"},
	{"events_orphaned", stepClear, &domain.Event{}, "organizer_address"},
	{"scenes_orphaned", stepClear, &domain.SceneContent{}, "creator_address"},
	{"sales_seller_cleared", stepClear, &domain.Transaction{}, "seller_address"},
	{"sales_buyer_cleared", stepClear, &domain.Transaction{}, "buyer_address"},
}

// run executes one step inside tx and reports the affected row count
func (st cascadeStep) run(tx *gorm.DB, wallet string) (int64, error) {
	var res *gorm.DB
	switch st.Action {
	case stepDelete:
		res = tx.Where(st.Column+" = ?", wallet).Delete(st.Model)
	case stepClear:
		res = tx.Model(st.Model).Where(st.Column+" = ?", wallet).Update(st.Column, nil)
	}
	if res.Error != nil {
		return 0, classifyWrite(res.Error)
	}
	return res.RowsAffected, nil
}

// CascadeSummary reports the per-category row counts of one user deletion
type CascadeSummary struct {
	Wallet         string           `json:"wallet"`          // Deleted wallet address
	Username       string           `json:"username"`        // Username the wallet had
	Counts         map[string]int64 `json:"counts"`          // Affected rows per cascade category
	AssetsRetained int64            `json:"assets_retained"` // Assets still pointing at the deleted wallet
}

// DeleteUserCascade removes a user and every dependent row, all inside one
// transaction. The operation is unconditional once called; obtaining
// confirmation is the caller's responsibility. A wallet that does not exist,
// including one already deleted, is reported as not-found rather than a
// silent no-op.
//
// Digital assets owned by the user are neither reassigned nor deleted, their
// owner column keeps the now-dangling wallet string. The summary carries a
// count of such assets so the gap is visible instead of silent.
func (s *Session) DeleteUserCascade(wallet string) (*CascadeSummary, error) {
	// Local validation before any statement runs
	if wallet == "" {
		return nil, Validation("wallet address is required")
	}
	summary := &CascadeSummary{Wallet: wallet, Counts: make(map[string]int64)}
	err := s.Transact(func(tx *gorm.DB) error {
		// The user must still exist
		user, err := FindUserByWallet(tx, wallet)
		if err != nil {
			return err
		}
		summary.Username = user.Username
		// Run the declarative cascade in order
		for _, step := range userCascade {
			n, err := step.run(tx, wallet)
			if err != nil {
				return err
			}
			summary.Counts[step.Category] = n
		}
		// Count the assets left pointing at the deleted wallet
		if err := tx.Model(&domain.DigitalAsset{}).
			Where("owner_address = ?", wallet).
			Count(&summary.AssetsRetained).Error; err != nil {
			return queryErr(err)
		}
		// Finally remove the user row itself
		if err := tx.Where("wallet_address = ?", wallet).
			Delete(&domain.UserProfile{}).Error; err != nil {
			return classifyWrite(err)
		}
		return nil
	})
	if err != nil {
		// Log the failure, every prior step was rolled back
		logrus.WithFields(logrus.Fields{
			"wallet": wallet,      // Target wallet
			"error":  err.Error(), // Classified error message
		}).Warn("User deletion rejected")
		return nil, err
	}
	// Log the committed cascade with its audit counts
	logrus.WithFields(logrus.Fields{
		"wallet":          wallet,                 // Deleted wallet
		"username":        summary.Username,       // Deleted username
		"counts":          summary.Counts,         // Per-category affected rows
		"assets_retained": summary.AssetsRetained, // Assets keeping the dangling wallet
	}).Info("User deleted")
	return summary, nil
}
