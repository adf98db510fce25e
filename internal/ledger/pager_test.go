package ledger

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPagerWalksFullPagesThenStops(t *testing.T) {
	s := newTestSession(t)
	// 45 profiles with strictly decreasing join dates so the order is stable
	base := time.Now()
	for i := 0; i < 45; i++ {
		seedUserAt(t, s, fmt.Sprintf("0x%040d", i), fmt.Sprintf("user%02d", i), base.Add(-time.Duration(i)*time.Minute))
	}

	pager := s.AllUsers(20)
	var sizes []int
	for {
		var rows []UserRow
		ok, err := pager.NextPage(&rows)
		require.NoError(t, err)
		if !ok {
			break
		}
		sizes = append(sizes, len(rows))
	}
	// Two full pages and one final partial page
	require.Equal(t, []int{20, 20, 5}, sizes)
	require.True(t, pager.Done())

	// Exhausted pagers keep reporting end-of-data
	var rows []UserRow
	ok, err := pager.NextPage(&rows)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPagerExactMultiple(t *testing.T) {
	s := newTestSession(t)
	base := time.Now()
	for i := 0; i < 40; i++ {
		seedUserAt(t, s, fmt.Sprintf("0x%040d", i), fmt.Sprintf("user%02d", i), base.Add(-time.Duration(i)*time.Minute))
	}

	pager := s.AllUsers(20)
	var pages int
	for {
		var rows []UserRow
		ok, err := pager.NextPage(&rows)
		require.NoError(t, err)
		if !ok {
			break
		}
		pages++
		require.Len(t, rows, 20)
	}
	// The empty page after two full ones terminates without being surfaced
	require.Equal(t, 2, pages)
}

func TestPagerSeek(t *testing.T) {
	s := newTestSession(t)
	base := time.Now()
	for i := 0; i < 25; i++ {
		seedUserAt(t, s, fmt.Sprintf("0x%040d", i), fmt.Sprintf("user%02d", i), base.Add(-time.Duration(i)*time.Minute))
	}

	pager := s.AllUsers(10)
	pager.Seek(3)
	var rows []UserRow
	ok, err := pager.NextPage(&rows)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, rows, 5)
	// Newest-first ordering puts the oldest joiners on the last page
	require.Equal(t, "user20", rows[0].Username)
	require.True(t, pager.Done())
}

func TestPagerEmptyListing(t *testing.T) {
	s := newTestSession(t)
	pager := s.AllUsers(10)
	var rows []UserRow
	ok, err := pager.NextPage(&rows)
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, rows)
}

func TestAllAssetsRowsCarrySpecialization(t *testing.T) {
	s := newTestSession(t)
	seedUser(t, s, "0xaaa", "alice")
	seedLand(t, s, 1, "0xaaa", 4, -2, "Genesis Plaza")
	seedWearable(t, s, 2, "0xaaa", "hat", "epic")

	pager := s.AllAssets(10)
	var rows []AssetRow
	ok, err := pager.NextPage(&rows)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, rows, 2)

	require.Equal(t, "Land", rows[0].AssetType)
	require.NotNil(t, rows[0].XCoordinate)
	require.Equal(t, 4, *rows[0].XCoordinate)
	require.Nil(t, rows[0].Category)

	require.Equal(t, "Wearable", rows[1].AssetType)
	require.Nil(t, rows[1].XCoordinate)
	require.NotNil(t, rows[1].Rarity)
	require.Equal(t, "epic", *rows[1].Rarity)
}

// seedUserAt inserts a profile with a fixed join date
func seedUserAt(t *testing.T, s *Session, wallet, username string, joined time.Time) {
	t.Helper()
	require.NoError(t, s.db.Exec(
		"INSERT INTO user_profiles (wallet_address, username, password, role, join_date) VALUES (?, ?, ?, ?, ?)",
		wallet, username, "irrelevant", "user", joined,
	).Error)
}
