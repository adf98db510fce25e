package domain

// DAOProposal Model
type DAOProposal struct {
	ProposalID     uint   `gorm:"primaryKey"`             // Primary key
	Title          string `gorm:"size:200;not null"`      // Proposal title
	Status         string `gorm:"size:50;default:Active"` // Active, Passed, Rejected
	CreatorAddress string `gorm:"size:42;index"`          // Creator wallet
}

// TableName pins the table name so the DAO initialism is not re-cased
func (DAOProposal) TableName() string {
	return "dao_proposals"
}

// Vote Model, composite key of voter and proposal
type Vote struct {
	VoterAddress string  `gorm:"primaryKey;size:42"` // Voter wallet
	ProposalID   uint    `gorm:"primaryKey"`         // Voted proposal
	VotingWeight float64 `gorm:"default:1"`          // Weight carried by the vote
}
