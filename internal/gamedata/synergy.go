package gamedata

import "sort"

// Synergies groups activations by table. These are display-only: no bonus is
// ever folded into a unit's combat stats before resolution.
type Synergies struct {
	FactionActivations []SynergyActivation `json:"factionActivations"`
	RoleActivations    []SynergyActivation `json:"roleActivations"`
}

func activeThresholds(cfg SynergyConfig, count int) []SynergyThreshold {
	var active []SynergyThreshold
	for _, t := range cfg.Thresholds {
		if count >= t.Count {
			active = append(active, t)
		}
	}
	return active
}

func resolveActivations(configs []SynergyConfig, counts map[string]int) []SynergyActivation {
	out := make([]SynergyActivation, 0, len(configs))
	for _, cfg := range configs {
		count := counts[cfg.Key]
		active := activeThresholds(cfg, count)
		if len(active) == 0 {
			continue
		}
		out = append(out, SynergyActivation{
			Key:              cfg.Key,
			Name:             cfg.Name,
			Type:             cfg.Type,
			Count:            count,
			ActiveThresholds: active,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// ComputeSynergies tallies faction and role counts across a roster and reports
// every threshold the counts reach, strongest activation first.
func ComputeSynergies(units []UnitDefinition) Synergies {
	factionCounts := map[string]int{}
	roleCounts := map[string]int{}
	for _, u := range units {
		factionCounts[u.Faction]++
		roleCounts[u.Role]++
	}
	return Synergies{
		FactionActivations: resolveActivations(FactionSynergies, factionCounts),
		RoleActivations:    resolveActivations(RoleSynergies, roleCounts),
	}
}
