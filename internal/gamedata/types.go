package gamedata

// Faction keys used by the unit catalog and synergy tables.
const (
	FactionStrawHat      = "straw_hat"
	FactionNavy          = "navy"
	FactionBeastPirates  = "beast_pirates"
	FactionWarlords      = "warlords"
	FactionRevolutionary = "revolutionary"
	FactionSupernova     = "supernova"
	FactionCP9           = "cp9"
	FactionWhitebeard    = "whitebeard"
)

// Role keys.
const (
	RoleAttacker = "attacker"
	RoleTank     = "tank"
	RoleSupport  = "support"
	RoleControl  = "control"
)

// UnitDefinition is one catalog entry. Definitions are static templates; player
// copies reference them by ID.
type UnitDefinition struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Faction            string `json:"faction"`
	Role               string `json:"role"`
	Tier               int    `json:"tier"`
	Power              int    `json:"power"`
	Health             int    `json:"health"`
	AbilityType        string `json:"abilityType"` // passive | on_hit | on_death | cast
	AbilityValue       int    `json:"abilityValue"`
	AbilityDescription string `json:"abilityDescription"`
	Image              string `json:"image"`
}

// SynergyBonus is the stat package a threshold grants. Bonuses are reported to
// clients but never applied to combat stats.
type SynergyBonus struct {
	Attack       int `json:"attack,omitempty"`
	Health       int `json:"health,omitempty"`
	Shield       int `json:"shield,omitempty"`
	Speed        int `json:"speed,omitempty"`
	AbilityPower int `json:"abilityPower,omitempty"`
}

type SynergyThreshold struct {
	Count  int           `json:"count"`
	Effect string        `json:"effect"`
	Bonus  *SynergyBonus `json:"bonus,omitempty"`
}

type SynergyConfig struct {
	Key        string             `json:"key"`
	Name       string             `json:"name"`
	Type       string             `json:"type"` // faction | role
	Thresholds []SynergyThreshold `json:"thresholds"`
}

// SynergyActivation reports which thresholds a roster has reached.
type SynergyActivation struct {
	Key              string             `json:"key"`
	Name             string             `json:"name"`
	Type             string             `json:"type"`
	Count            int                `json:"count"`
	ActiveThresholds []SynergyThreshold `json:"activeThresholds"`
}
