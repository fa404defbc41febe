package gamedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIntegrity(t *testing.T) {
	require.NotEmpty(t, Units)
	seen := map[string]bool{}
	for _, u := range Units {
		assert.False(t, seen[u.ID], "duplicate unit id %s", u.ID)
		seen[u.ID] = true
		assert.NotEmpty(t, u.Name, "unit %s", u.ID)
		assert.Positive(t, u.Power, "unit %s", u.ID)
		assert.Positive(t, u.Health, "unit %s", u.ID)
		assert.GreaterOrEqual(t, u.Tier, 1, "unit %s", u.ID)
		assert.LessOrEqual(t, u.Tier, 5, "unit %s", u.ID)
	}
}

func TestUnitByID(t *testing.T) {
	def, ok := UnitByID("luffy")
	require.True(t, ok)
	assert.Equal(t, "Monkey D. Luffy", def.Name)

	_, ok = UnitByID("not-a-unit")
	assert.False(t, ok)
}

func TestWaveByIndex(t *testing.T) {
	_, ok := WaveByIndex(0)
	assert.False(t, ok)
	_, ok = WaveByIndex(-1)
	assert.False(t, ok)

	first, ok := WaveByIndex(1)
	require.True(t, ok)
	assert.Equal(t, PveWaves[0].ID, first.ID)

	last, ok := WaveByIndex(len(PveWaves))
	require.True(t, ok)
	assert.Equal(t, PveWaves[len(PveWaves)-1].ID, last.ID)

	// Indices past the ladder clamp to the final wave.
	beyond, ok := WaveByIndex(len(PveWaves) + 10)
	require.True(t, ok)
	assert.Equal(t, last.ID, beyond.ID)
}

func TestComputeSynergiesThresholds(t *testing.T) {
	units := []UnitDefinition{
		{ID: "a", Faction: FactionStrawHat, Role: RoleAttacker},
		{ID: "b", Faction: FactionStrawHat, Role: RoleAttacker},
		{ID: "c", Faction: FactionNavy, Role: RoleTank},
	}

	syn := ComputeSynergies(units)

	require.Len(t, syn.FactionActivations, 1, "navy count 1 is below its first threshold")
	got := syn.FactionActivations[0]
	assert.Equal(t, FactionStrawHat, got.Key)
	assert.Equal(t, 2, got.Count)
	require.Len(t, got.ActiveThresholds, 1)
	assert.Equal(t, 2, got.ActiveThresholds[0].Count)

	require.Len(t, syn.RoleActivations, 1)
	assert.Equal(t, RoleAttacker, syn.RoleActivations[0].Key)
}

func TestComputeSynergiesMultipleThresholds(t *testing.T) {
	units := make([]UnitDefinition, 4)
	for i := range units {
		units[i] = UnitDefinition{Faction: FactionStrawHat, Role: RoleAttacker}
	}

	syn := ComputeSynergies(units)

	require.Len(t, syn.FactionActivations, 1)
	assert.Len(t, syn.FactionActivations[0].ActiveThresholds, 2, "counts 2 and 4 both reached")
}

func TestComputeSynergiesEmpty(t *testing.T) {
	syn := ComputeSynergies(nil)
	assert.Empty(t, syn.FactionActivations)
	assert.Empty(t, syn.RoleActivations)
}

func TestComputeSynergiesOrdersByCount(t *testing.T) {
	units := []UnitDefinition{
		{Faction: FactionStrawHat, Role: RoleAttacker},
		{Faction: FactionStrawHat, Role: RoleAttacker},
		{Faction: FactionStrawHat, Role: RoleTank},
		{Faction: FactionNavy, Role: RoleTank},
		{Faction: FactionNavy, Role: RoleAttacker},
		{Faction: FactionNavy, Role: RoleSupport},
	}

	syn := ComputeSynergies(units)
	for i := 1; i < len(syn.FactionActivations); i++ {
		assert.GreaterOrEqual(t, syn.FactionActivations[i-1].Count, syn.FactionActivations[i].Count)
	}
}
