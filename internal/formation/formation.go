package formation

import (
	"github.com/rotisserie/eris"

	"github.com/grandline/autobattler/internal/gamedata"
	"github.com/grandline/autobattler/internal/shop"
)

// Size is the number of placeable slots (a single 1x7 row).
const Size = 7

var (
	ErrSlotOutOfBounds    = eris.New("slot index out of bounds")
	ErrMissingInstanceID  = eris.New("instanceId is required")
	ErrDuplicateSlotIndex = eris.New("duplicate slot index")
	ErrBenchUnitNotFound  = eris.New("bench unit not found")
	ErrUnitDefMissing     = eris.New("unit definition missing")
)

// Slot is one occupied position.
type Slot struct {
	Index      int    `json:"index"`
	InstanceID string `json:"instanceId"`
	UnitID     string `json:"unitId"`
}

// SynergySummary carries the display names of active synergies.
type SynergySummary struct {
	Faction []string `json:"faction"`
	Role    []string `json:"role"`
}

// State is a player's saved formation.
type State struct {
	Slots          []Slot         `json:"slots"`
	Locked         bool           `json:"locked"`
	SynergySummary SynergySummary `json:"synergySummary"`
}

// PayloadSlot is the client-submitted slot shape.
type PayloadSlot struct {
	Index      int    `json:"index"`
	InstanceID string `json:"instanceId"`
}

// Payload is the client-submitted formation.
type Payload struct {
	Slots []PayloadSlot `json:"slots"`
}

// Validate checks slot bounds, instance ids, and index uniqueness.
func Validate(payload Payload) error {
	seen := map[int]bool{}
	for _, slot := range payload.Slots {
		if slot.Index < 0 || slot.Index >= Size {
			return ErrSlotOutOfBounds
		}
		if slot.InstanceID == "" {
			return ErrMissingInstanceID
		}
		if seen[slot.Index] {
			return ErrDuplicateSlotIndex
		}
		seen[slot.Index] = true
	}
	return nil
}

// ResolvedUnit pairs a slot with the catalog definition behind it.
type ResolvedUnit struct {
	SlotIndex int
	Unit      gamedata.UnitDefinition
	BenchUnit shop.BenchUnit
}

// ResolveUnits maps every payload slot to a bench unit and its definition.
// Unlike the permissive round-time roster mapping, submission-time resolution
// is strict: placing a unit that is not on the bench is a rejected operation.
func ResolveUnits(payload Payload, bench []shop.BenchUnit) ([]ResolvedUnit, error) {
	byInstance := make(map[string]shop.BenchUnit, len(bench))
	for _, b := range bench {
		byInstance[b.InstanceID] = b
	}
	resolved := make([]ResolvedUnit, 0, len(payload.Slots))
	for _, slot := range payload.Slots {
		benchUnit, ok := byInstance[slot.InstanceID]
		if !ok {
			return nil, eris.Wrapf(ErrBenchUnitNotFound, "instance %s", slot.InstanceID)
		}
		def, ok := gamedata.UnitByID(benchUnit.UnitID)
		if !ok {
			return nil, eris.Wrapf(ErrUnitDefMissing, "unit %s", benchUnit.UnitID)
		}
		resolved = append(resolved, ResolvedUnit{SlotIndex: slot.Index, Unit: def, BenchUnit: benchUnit})
	}
	return resolved, nil
}

// Build validates and resolves a payload into a full formation state with its
// synergy summary computed. Synergies are cosmetic: they are reported here and
// never folded into combat stats.
func Build(payload Payload, bench []shop.BenchUnit) (State, error) {
	if err := Validate(payload); err != nil {
		return State{}, err
	}
	resolved, err := ResolveUnits(payload, bench)
	if err != nil {
		return State{}, err
	}

	defs := make([]gamedata.UnitDefinition, 0, len(resolved))
	slots := make([]Slot, 0, len(resolved))
	for _, r := range resolved {
		defs = append(defs, r.Unit)
		slots = append(slots, Slot{Index: r.SlotIndex, InstanceID: r.BenchUnit.InstanceID, UnitID: r.BenchUnit.UnitID})
	}

	synergies := gamedata.ComputeSynergies(defs)
	summary := SynergySummary{Faction: []string{}, Role: []string{}}
	for _, a := range synergies.FactionActivations {
		summary.Faction = append(summary.Faction, a.Name)
	}
	for _, a := range synergies.RoleActivations {
		summary.Role = append(summary.Role, a.Name)
	}

	return State{Slots: slots, SynergySummary: summary}, nil
}

// Lock marks a formation as locked for the next round.
func Lock(state State) State {
	state.Locked = true
	return state
}
