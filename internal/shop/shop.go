package shop

import (
	"math/rand"
	"sort"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/grandline/autobattler/internal/gamedata"
)

const (
	Size       = 4
	LevelCap   = 7
	RerollCost = 2
)

// TierCost maps a unit tier to its shop price. Selling refunds cost-1, floored
// at 1 coin.
var TierCost = map[int]int{1: 1, 2: 2, 3: 3, 4: 4, 5: 5}

// Probabilities loosely mimic TFT style scaling; weights sum to 1 per level.
var tierProbabilities = map[int]map[int]float64{
	1: {1: 0.6, 2: 0.4},
	2: {1: 0.5, 2: 0.35, 3: 0.15},
	3: {1: 0.5, 2: 0.35, 3: 0.15},
	4: {1: 0.35, 2: 0.4, 3: 0.2, 4: 0.05},
	5: {1: 0.25, 2: 0.35, 3: 0.25, 4: 0.12, 5: 0.03},
	6: {1: 0.2, 2: 0.3, 3: 0.28, 4: 0.17, 5: 0.05},
	7: {1: 0.15, 2: 0.25, 3: 0.3, 4: 0.2, 5: 0.1},
}

var (
	ErrNotEnoughCoins = eris.New("not enough coins")
	ErrNotInShop      = eris.New("unit not available in shop")
	ErrNotOnBench     = eris.New("unit not found on bench")
)

// BenchUnit is a purchased copy of a catalog unit.
type BenchUnit struct {
	InstanceID string `json:"instanceId"`
	UnitID     string `json:"unitId"`
}

// State is one player's shop-side state: current offer, bench, and economy.
type State struct {
	Level       int                       `json:"level"`
	XP          int                       `json:"xp"`
	Coins       int                       `json:"coins"`
	Shop        []gamedata.UnitDefinition `json:"shop"`
	Bench       []BenchUnit               `json:"bench"`
	ShopVersion int                       `json:"shopVersion"`
}

var tierBuckets = func() map[int][]gamedata.UnitDefinition {
	m := map[int][]gamedata.UnitDefinition{}
	for _, u := range gamedata.Units {
		m[u.Tier] = append(m[u.Tier], u)
	}
	return m
}()

// ClampLevel bounds a level to the valid 1..LevelCap range.
func ClampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > LevelCap {
		return LevelCap
	}
	return level
}

// ProbabilitiesForLevel exposes the tier weights used at a given level.
func ProbabilitiesForLevel(level int) map[int]float64 {
	return tierProbabilities[ClampLevel(level)]
}

func pickTier(level int, rng *rand.Rand) int {
	probs := tierProbabilities[ClampLevel(level)]
	tiers := make([]int, 0, len(probs))
	total := 0.0
	for tier, weight := range probs {
		tiers = append(tiers, tier)
		total += weight
	}
	sort.Ints(tiers)
	roll := rng.Float64() * total
	cumulative := 0.0
	for _, tier := range tiers {
		cumulative += probs[tier]
		if roll <= cumulative {
			return tier
		}
	}
	return tiers[len(tiers)-1]
}

func pickUnitOfTier(tier int, rng *rand.Rand) gamedata.UnitDefinition {
	bucket := tierBuckets[tier]
	return bucket[rng.Intn(len(bucket))]
}

// Generate rolls a fresh shop offer for a level.
func Generate(level int, rng *rand.Rand) []gamedata.UnitDefinition {
	offer := make([]gamedata.UnitDefinition, 0, Size)
	for i := 0; i < Size; i++ {
		offer = append(offer, pickUnitOfTier(pickTier(level, rng), rng))
	}
	return offer
}

// NewState builds the initial shop state for a freshly logged-in player.
func NewState(coins int, rng *rand.Rand) *State {
	return &State{
		Level:       1,
		Coins:       coins,
		Shop:        Generate(1, rng),
		ShopVersion: 1,
		Bench:       []BenchUnit{},
	}
}

// Reroll replaces the current offer for RerollCost coins.
func (s *State) Reroll(rng *rand.Rand) error {
	if s.Coins < RerollCost {
		return ErrNotEnoughCoins
	}
	s.Coins -= RerollCost
	s.Shop = Generate(s.Level, rng)
	s.ShopVersion++
	return nil
}

// Buy moves a unit from the offer to the bench, charging its tier cost.
func (s *State) Buy(unitID string) (BenchUnit, int, error) {
	idx := -1
	for i, u := range s.Shop {
		if u.ID == unitID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return BenchUnit{}, 0, ErrNotInShop
	}
	cost := TierCost[s.Shop[idx].Tier]
	if s.Coins < cost {
		return BenchUnit{}, 0, ErrNotEnoughCoins
	}
	s.Coins -= cost
	s.Shop = append(s.Shop[:idx], s.Shop[idx+1:]...)
	bought := BenchUnit{InstanceID: uuid.NewString(), UnitID: unitID}
	s.Bench = append(s.Bench, bought)
	return bought, cost, nil
}

// Sell removes a bench unit and refunds cost-1 (min 1).
func (s *State) Sell(instanceID string) (int, error) {
	idx := -1
	for i, b := range s.Bench {
		if b.InstanceID == instanceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, ErrNotOnBench
	}
	def, ok := gamedata.UnitByID(s.Bench[idx].UnitID)
	if !ok {
		return 0, eris.Errorf("unit definition missing for %s", s.Bench[idx].UnitID)
	}
	s.Bench = append(s.Bench[:idx], s.Bench[idx+1:]...)
	refund := TierCost[def.Tier] - 1
	if refund < 1 {
		refund = 1
	}
	s.Coins += refund
	return refund, nil
}
