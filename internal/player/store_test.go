package player

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grandline/autobattler/internal/formation"
	"github.com/grandline/autobattler/internal/shop"
)

func newTestStore() *Store {
	return NewStore(rand.New(rand.NewSource(3)))
}

func TestEnsureShopSeedsOnce(t *testing.T) {
	s := newTestStore()

	first := s.EnsureShop("u1", 10)
	assert.Equal(t, 10, first.Coins)
	require.Len(t, first.Shop, shop.Size)

	// Later calls never reseed, whatever coins they pass.
	again := s.EnsureShop("u1", 999)
	assert.Equal(t, first, again)
}

func TestBuyThenSetFormation(t *testing.T) {
	s := newTestStore()
	state := s.EnsureShop("u1", 10)

	bought, cost, after, err := s.Buy("u1", state.Shop[0].ID)
	require.NoError(t, err)
	assert.Positive(t, cost)
	require.Len(t, after.Bench, 1)

	saved, err := s.SetFormation("u1", formation.Payload{Slots: []formation.PayloadSlot{
		{Index: 0, InstanceID: bought.InstanceID},
	}})
	require.NoError(t, err)
	require.Len(t, saved.Slots, 1)

	got, ok := s.Formation("u1")
	require.True(t, ok)
	assert.Equal(t, saved, got)
}

func TestFormationAbsentByDefault(t *testing.T) {
	s := newTestStore()
	s.EnsureShop("u1", 10)

	_, ok := s.Formation("u1")
	assert.False(t, ok)
	_, ok = s.Formation("unknown")
	assert.False(t, ok)
}

func TestSetFormationRejectsForeignBench(t *testing.T) {
	s := newTestStore()
	s.EnsureShop("u1", 10)

	_, err := s.SetFormation("u1", formation.Payload{Slots: []formation.PayloadSlot{
		{Index: 0, InstanceID: "someone-elses-unit"},
	}})
	assert.Error(t, err)
}

func TestSetLockedBlocksFormationUpdates(t *testing.T) {
	s := newTestStore()
	state := s.EnsureShop("u1", 10)

	bought, _, _, err := s.Buy("u1", state.Shop[0].ID)
	require.NoError(t, err)
	payload := formation.Payload{Slots: []formation.PayloadSlot{
		{Index: 0, InstanceID: bought.InstanceID},
	}}
	_, err = s.SetFormation("u1", payload)
	require.NoError(t, err)

	s.SetLocked("u1", true)
	got, ok := s.Formation("u1")
	require.True(t, ok)
	assert.True(t, got.Locked)

	_, err = s.SetFormation("u1", payload)
	assert.ErrorIs(t, err, ErrFormationLocked)

	// Unlocking makes the formation editable again.
	s.SetLocked("u1", false)
	_, err = s.SetFormation("u1", payload)
	assert.NoError(t, err)
}

func TestSetLockedWithoutFormationIsNoop(t *testing.T) {
	s := newTestStore()
	s.SetLocked("unknown", true)
	_, ok := s.Formation("unknown")
	assert.False(t, ok)
}

func TestRerollAndSell(t *testing.T) {
	s := newTestStore()
	state := s.EnsureShop("u1", 10)

	bought, cost, _, err := s.Buy("u1", state.Shop[0].ID)
	require.NoError(t, err)

	refund, after, err := s.Sell("u1", bought.InstanceID)
	require.NoError(t, err)
	assert.Empty(t, after.Bench)

	rerolled, err := s.Reroll("u1")
	require.NoError(t, err)
	assert.Equal(t, 10-cost+refund-shop.RerollCost, rerolled.Coins)

	_, _, err = s.Sell("u1", bought.InstanceID)
	assert.ErrorIs(t, err, shop.ErrNotOnBench)
}
