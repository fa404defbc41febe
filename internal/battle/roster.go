package battle

import (
	"github.com/google/uuid"

	"github.com/grandline/autobattler/internal/formation"
	"github.com/grandline/autobattler/internal/gamedata"
)

// FromFormation projects occupied formation slots into a roster. Slots whose
// unit no longer resolves (sold after being placed, stale catalog reference)
// are skipped rather than treated as an error, so a stale formation degrades
// to fewer combatants instead of failing the round.
func FromFormation(f formation.State, lookup func(unitID string) (gamedata.UnitDefinition, bool)) []CombatUnit {
	roster := make([]CombatUnit, 0, len(f.Slots))
	for _, slot := range f.Slots {
		if slot.UnitID == "" {
			continue
		}
		def, ok := lookup(slot.UnitID)
		if !ok {
			continue
		}
		roster = append(roster, CombatUnit{
			ID:     slot.InstanceID,
			Name:   def.Name,
			Power:  def.Power,
			Health: def.Health,
			Role:   def.Role,
		})
	}
	return roster
}

// FromWave instantiates a wave template. Each combatant gets a fresh instance
// id so the same wave can back many concurrent battles without aliasing.
func FromWave(wave gamedata.PveWave) []CombatUnit {
	roster := make([]CombatUnit, 0, len(wave.Units))
	for _, u := range wave.Units {
		roster = append(roster, CombatUnit{
			ID:     uuid.NewString(),
			Name:   u.Name,
			Power:  u.Power,
			Health: u.Health,
			Role:   u.Role,
		})
	}
	return roster
}
