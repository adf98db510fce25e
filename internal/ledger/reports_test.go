package ledger

import (
	"testing"
	"time"

	"genesis_city/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestProposalsByUser(t *testing.T) {
	s := newTestSession(t)
	seedUser(t, s, "0xaaa", "alice")
	require.NoError(t, s.db.Create(&domain.DAOProposal{ProposalID: 1, Title: "First", Status: "Passed", CreatorAddress: "0xaaa"}).Error)
	require.NoError(t, s.db.Create(&domain.DAOProposal{ProposalID: 2, Title: "Second", Status: "Active", CreatorAddress: "0xaaa"}).Error)
	require.NoError(t, s.db.Create(&domain.DAOProposal{ProposalID: 3, Title: "Else", Status: "Active", CreatorAddress: "0xbbb"}).Error)

	rows, err := s.ProposalsByUser("0xaaa")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Newest first
	require.Equal(t, uint(2), rows[0].ProposalID)
	require.Equal(t, "Second", rows[0].Title)
	require.Equal(t, uint(1), rows[1].ProposalID)

	// No proposals is an empty report, not an error
	rows, err = s.ProposalsByUser("0xccc")
	require.NoError(t, err)
	require.Empty(t, rows)

	// Empty wallet is rejected locally
	_, err = s.ProposalsByUser("")
	require.Equal(t, KindValidation, KindOf(err))
}

func TestBusinessesAfter(t *testing.T) {
	s := newTestSession(t)
	seedUser(t, s, "0xaaa", "alice")
	cutoff := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	owner := "0xaaa"
	require.NoError(t, s.db.Create(&domain.Business{BusinessName: "Old Shop", BusinessType: "Shop", OwnerAddress: &owner, DateEstablished: cutoff.AddDate(0, -2, 0), ParcelID: 1}).Error)
	require.NoError(t, s.db.Create(&domain.Business{BusinessName: "New Shop", BusinessType: "Shop", OwnerAddress: &owner, DateEstablished: cutoff.AddDate(0, 1, 0), ParcelID: 1}).Error)
	require.NoError(t, s.db.Create(&domain.Business{BusinessName: "Abandoned Bar", BusinessType: "Venue", OwnerAddress: nil, DateEstablished: cutoff.AddDate(0, 2, 0), ParcelID: 2}).Error)

	rows, err := s.BusinessesAfter(cutoff)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Oldest first
	require.Equal(t, "New Shop", rows[0].BusinessName)
	require.NotNil(t, rows[0].Username)
	require.Equal(t, "alice", *rows[0].Username)
	// The abandoned business joins to a NULL username
	require.Equal(t, "Abandoned Bar", rows[1].BusinessName)
	require.Nil(t, rows[1].Username)
	require.Nil(t, rows[1].OwnerAddress)
}

func TestLandSalesSummary(t *testing.T) {
	s := newTestSession(t)
	seedUser(t, s, "0xaaa", "alice")
	seedLand(t, s, 1, "0xaaa", 0, 0, "Genesis Plaza")
	seedWearable(t, s, 2, "0xaaa", "hat", "common")
	a, b := "0xaaa", "0xbbb"

	mk := func(id string, assetID uint, price float64, age time.Duration, currency string) {
		require.NoError(t, s.db.Create(&domain.Transaction{
			TransactionID: id, AssetID: assetID, SellerAddress: &a, BuyerAddress: &b,
			Price: price, Currency: currency, Timestamp: time.Now().Add(-age),
		}).Error)
	}
	mk("0x01", 1, 100, time.Hour, SaleCurrency)        // counted
	mk("0x02", 1, 50, 48*time.Hour, SaleCurrency)      // counted
	mk("0x03", 1, 999, 120*24*time.Hour, SaleCurrency) // outside the window
	mk("0x04", 2, 10, time.Hour, SaleCurrency)         // wearable, not land
	mk("0x05", 1, 77, time.Hour, "USDC")               // wrong currency

	summary, err := s.LandSalesSummary(time.Now().Add(-SalesWindow))
	require.NoError(t, err)
	require.EqualValues(t, 2, summary.TotalSales)
	require.Equal(t, 150.0, summary.TotalVolume)
	require.Equal(t, 75.0, summary.AvgPrice)
	require.Equal(t, 50.0, summary.MinPrice)
	require.Equal(t, 100.0, summary.MaxPrice)
}

func TestLandSalesSummaryEmptyWindow(t *testing.T) {
	s := newTestSession(t)
	summary, err := s.LandSalesSummary(time.Now().Add(-SalesWindow))
	require.NoError(t, err)
	require.Zero(t, summary.TotalSales)
	require.Zero(t, summary.TotalVolume)
	require.Zero(t, summary.AvgPrice)
}

func TestEventsByKeyword(t *testing.T) {
	s := newTestSession(t)
	seedUser(t, s, "0xaaa", "alice")
	seedLand(t, s, 1, "0xaaa", 3, -7, "Music District")
	organizer := "0xaaa"
	parcel := uint(1)
	require.NoError(t, s.db.Create(&domain.Event{EventID: 1, EventName: "Neon Rave", OrganizerAddress: &organizer, StartTimestamp: time.Now().Add(time.Hour), EndTimestamp: time.Now().Add(3 * time.Hour), SceneParcelID: &parcel}).Error)
	require.NoError(t, s.db.Create(&domain.Event{EventID: 2, EventName: "Quiet Meetup", OrganizerAddress: nil, StartTimestamp: time.Now().Add(2 * time.Hour), EndTimestamp: time.Now().Add(4 * time.Hour)}).Error)

	rows, err := s.EventsByKeyword("Rave")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Neon Rave", rows[0].EventName)
	require.NotNil(t, rows[0].OrganizerName)
	require.Equal(t, "alice", *rows[0].OrganizerName)
	require.NotNil(t, rows[0].XCoordinate)
	require.Equal(t, 3, *rows[0].XCoordinate)
	require.NotNil(t, rows[0].DistrictName)
	require.Equal(t, "Music District", *rows[0].DistrictName)

	// Orphaned event with no venue comes back with NULL joins
	rows, err = s.EventsByKeyword("Meetup")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Nil(t, rows[0].OrganizerName)
	require.Nil(t, rows[0].XCoordinate)

	// Empty keyword is rejected locally
	_, err = s.EventsByKeyword("")
	require.Equal(t, KindValidation, KindOf(err))
}

func TestVoterInfluence(t *testing.T) {
	s := newTestSession(t)
	// alice: 2 land parcels, 1 vote -> score 21
	seedUser(t, s, "0xaaa", "alice")
	seedLand(t, s, 1, "0xaaa", 0, 0, "Genesis Plaza")
	seedLand(t, s, 2, "0xaaa", 1, 0, "Genesis Plaza")
	// bob: 3 votes, no land -> score 3
	seedUser(t, s, "0xbbb", "bob")
	// carol: nothing -> excluded from the ranking
	seedUser(t, s, "0xccc", "carol")

	for pid := uint(1); pid <= 3; pid++ {
		require.NoError(t, s.db.Create(&domain.DAOProposal{ProposalID: pid, Title: "P", Status: "Active", CreatorAddress: "0xccc"}).Error)
		require.NoError(t, s.db.Create(&domain.Vote{VoterAddress: "0xbbb", ProposalID: pid, VotingWeight: 1}).Error)
	}
	require.NoError(t, s.db.Create(&domain.Vote{VoterAddress: "0xaaa", ProposalID: 1, VotingWeight: 1}).Error)

	rows, err := s.VoterInfluence(20)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "alice", rows[0].Username)
	require.EqualValues(t, 2, rows[0].LandParcelsOwned)
	require.EqualValues(t, 1, rows[0].VotesCast)
	require.EqualValues(t, 21, rows[0].InfluenceScore)
	require.Equal(t, "bob", rows[1].Username)
	require.EqualValues(t, 3, rows[1].InfluenceScore)
}

func TestSummary(t *testing.T) {
	s := newTestSession(t)
	seedUser(t, s, "0xaaa", "alice")
	seedUser(t, s, "0xbbb", "bob")
	seedLand(t, s, 1, "0xaaa", 0, 0, "Genesis Plaza")
	require.NoError(t, s.db.Create(&domain.Event{EventID: 1, EventName: "E", StartTimestamp: time.Now(), EndTimestamp: time.Now().Add(time.Hour)}).Error)

	stats, err := s.Summary()
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.Users)
	require.EqualValues(t, 1, stats.Assets)
	require.EqualValues(t, 0, stats.Businesses)
	require.EqualValues(t, 1, stats.Events)
}
