package gamedata

// PveUnit is a stateless wave template entry. Battle instances are stamped with
// fresh ids so waves can be reused across matches without aliasing.
type PveUnit struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Power  int    `json:"power"`
	Health int    `json:"health"`
	Role   string `json:"role"`
}

type PveWave struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	RewardCoins int       `json:"rewardCoins"`
	RewardXP    int       `json:"rewardXp"`
	Units       []PveUnit `json:"units"`
}

var PveWaves = []PveWave{
	{
		ID: "wave1", Name: "Marine Grunts", RewardCoins: 4, RewardXP: 1,
		Units: []PveUnit{
			{ID: "marine_grunt_1", Name: "Marine Grunt", Power: 18, Health: 200, Role: RoleAttacker},
			{ID: "marine_grunt_2", Name: "Marine Grunt", Power: 18, Health: 200, Role: RoleAttacker},
			{ID: "marine_grunt_3", Name: "Marine Grunt", Power: 20, Health: 210, Role: RoleAttacker},
		},
	},
	{
		ID: "wave2", Name: "Pacifista Patrol", RewardCoins: 5, RewardXP: 1,
		Units: []PveUnit{
			{ID: "pacifista_1", Name: "Pacifista", Power: 28, Health: 320, Role: RoleTank},
			{ID: "pacifista_2", Name: "Pacifista", Power: 28, Health: 320, Role: RoleTank},
		},
	},
	{
		ID: "wave3", Name: "Smoker Mini-Boss", RewardCoins: 6, RewardXP: 2,
		Units: []PveUnit{
			{ID: "smoker_boss", Name: "Smoker", Power: 45, Health: 520, Role: RoleControl},
			{ID: "marine_support", Name: "Marine Support", Power: 22, Health: 260, Role: RoleSupport},
		},
	},
}

// WaveByIndex returns the 1-indexed wave. Indices past the catalog return the
// last defined wave so long-running matches keep fighting something.
func WaveByIndex(index int) (PveWave, bool) {
	if index < 1 || len(PveWaves) == 0 {
		return PveWave{}, false
	}
	if index > len(PveWaves) {
		return PveWaves[len(PveWaves)-1], true
	}
	return PveWaves[index-1], true
}
