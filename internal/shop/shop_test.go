package shop

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grandline/autobattler/internal/gamedata"
)

func testRng() *rand.Rand { return rand.New(rand.NewSource(42)) }

func TestNewStateRollsFullOffer(t *testing.T) {
	s := NewState(10, testRng())

	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 10, s.Coins)
	assert.Equal(t, 1, s.ShopVersion)
	assert.Empty(t, s.Bench)
	require.Len(t, s.Shop, Size)
	for _, u := range s.Shop {
		assert.LessOrEqual(t, u.Tier, 2, "level 1 only offers tiers 1 and 2")
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	first := Generate(3, rand.New(rand.NewSource(7)))
	second := Generate(3, rand.New(rand.NewSource(7)))
	assert.Equal(t, first, second)
}

func TestRerollCostsAndReplaces(t *testing.T) {
	rng := testRng()
	s := NewState(10, rng)
	before := s.ShopVersion

	require.NoError(t, s.Reroll(rng))

	assert.Equal(t, 10-RerollCost, s.Coins)
	assert.Equal(t, before+1, s.ShopVersion)
	assert.Len(t, s.Shop, Size)
}

func TestRerollInsufficientCoins(t *testing.T) {
	rng := testRng()
	s := NewState(1, rng)
	assert.ErrorIs(t, s.Reroll(rng), ErrNotEnoughCoins)
	assert.Equal(t, 1, s.Coins)
}

func TestBuyMovesUnitToBench(t *testing.T) {
	s := NewState(10, testRng())
	target := s.Shop[0]

	bought, cost, err := s.Buy(target.ID)

	require.NoError(t, err)
	assert.Equal(t, TierCost[target.Tier], cost)
	assert.Equal(t, 10-cost, s.Coins)
	assert.Equal(t, target.ID, bought.UnitID)
	assert.NotEmpty(t, bought.InstanceID)
	assert.Len(t, s.Shop, Size-1)
	require.Len(t, s.Bench, 1)
	assert.Equal(t, bought, s.Bench[0])
}

func TestBuyErrors(t *testing.T) {
	s := NewState(0, testRng())
	_, _, err := s.Buy("nonexistent")
	assert.ErrorIs(t, err, ErrNotInShop)

	_, _, err = s.Buy(s.Shop[0].ID)
	assert.ErrorIs(t, err, ErrNotEnoughCoins)
	assert.Len(t, s.Shop, Size, "failed purchases leave the offer intact")
}

func TestSellRefundsCostMinusOne(t *testing.T) {
	s := NewState(20, testRng())
	target := s.Shop[0]
	bought, cost, err := s.Buy(target.ID)
	require.NoError(t, err)

	refund, err := s.Sell(bought.InstanceID)

	require.NoError(t, err)
	want := cost - 1
	if want < 1 {
		want = 1
	}
	assert.Equal(t, want, refund)
	assert.Empty(t, s.Bench)
	assert.Equal(t, 20-cost+refund, s.Coins)

	_, err = s.Sell(bought.InstanceID)
	assert.ErrorIs(t, err, ErrNotOnBench)
}

func TestProbabilitiesCoverEveryLevel(t *testing.T) {
	for level := 1; level <= LevelCap; level++ {
		probs := ProbabilitiesForLevel(level)
		require.NotEmpty(t, probs, "level %d", level)
		total := 0.0
		for _, w := range probs {
			total += w
		}
		assert.InDelta(t, 1.0, total, 0.001, "level %d weights should sum to 1", level)
	}
	assert.Equal(t, ProbabilitiesForLevel(1), ProbabilitiesForLevel(-3))
	assert.Equal(t, ProbabilitiesForLevel(LevelCap), ProbabilitiesForLevel(99))
}

func TestEveryTierHasUnits(t *testing.T) {
	// The generator indexes buckets by rolled tier; an empty bucket would
	// panic at roll time, so the catalog must populate all five.
	for tier := 1; tier <= 5; tier++ {
		assert.NotEmpty(t, tierBuckets[tier], "tier %d", tier)
	}
	for tier, bucket := range tierBuckets {
		for _, u := range bucket {
			def, ok := gamedata.UnitByID(u.ID)
			require.True(t, ok)
			assert.Equal(t, tier, def.Tier)
		}
	}
}
