package gamedata

func bonus(b SynergyBonus) *SynergyBonus { return &b }

var FactionSynergies = []SynergyConfig{
	{
		Key: FactionStrawHat, Name: "Straw Hat Pirates", Type: "faction",
		Thresholds: []SynergyThreshold{
			{Count: 2, Effect: "Minor attack buff to all allies", Bonus: bonus(SynergyBonus{Attack: 8})},
			{Count: 4, Effect: "Teamwide attack and speed boost", Bonus: bonus(SynergyBonus{Attack: 15, Speed: 10})},
			{Count: 6, Effect: "Burst of ability power at battle start", Bonus: bonus(SynergyBonus{AbilityPower: 20})},
		},
	},
	{
		Key: FactionNavy, Name: "Navy", Type: "faction",
		Thresholds: []SynergyThreshold{
			{Count: 3, Effect: "Defense buff for Tanks", Bonus: bonus(SynergyBonus{Shield: 20})},
			{Count: 5, Effect: "Damage reduction aura", Bonus: bonus(SynergyBonus{Health: 120})},
		},
	},
	{
		Key: FactionBeastPirates, Name: "Beast Pirates", Type: "faction",
		Thresholds: []SynergyThreshold{
			{Count: 3, Effect: "Frontline gains bonus health", Bonus: bonus(SynergyBonus{Health: 150})},
			{Count: 5, Effect: "Rage: bonus attack after first takedown", Bonus: bonus(SynergyBonus{Attack: 20})},
		},
	},
	{
		Key: FactionWarlords, Name: "Warlords", Type: "faction",
		Thresholds: []SynergyThreshold{
			{Count: 2, Effect: "First ally ability triggers twice"},
			{Count: 4, Effect: "Lifesteal on attacks", Bonus: bonus(SynergyBonus{Health: 80})},
		},
	},
	{
		Key: FactionRevolutionary, Name: "Revolutionary Army", Type: "faction",
		Thresholds: []SynergyThreshold{
			{Count: 2, Effect: "Start with a shield", Bonus: bonus(SynergyBonus{Shield: 25})},
			{Count: 4, Effect: "Periodic heal over time", Bonus: bonus(SynergyBonus{Health: 100})},
		},
	},
	{
		Key: FactionSupernova, Name: "Worst Generation", Type: "faction",
		Thresholds: []SynergyThreshold{
			{Count: 2, Effect: "Bonus crit chance", Bonus: bonus(SynergyBonus{Attack: 10})},
			{Count: 4, Effect: "Burst of damage on first hit", Bonus: bonus(SynergyBonus{Attack: 18})},
		},
	},
	{
		Key: FactionCP9, Name: "CP9", Type: "faction",
		Thresholds: []SynergyThreshold{
			{Count: 2, Effect: "First attack applies slow", Bonus: bonus(SynergyBonus{Speed: 8})},
			{Count: 4, Effect: "After dodge, gain attack speed", Bonus: bonus(SynergyBonus{Speed: 18})},
		},
	},
	{
		Key: FactionWhitebeard, Name: "Whitebeard Pirates", Type: "faction",
		Thresholds: []SynergyThreshold{
			{Count: 2, Effect: "Damage reduction while above 50% HP", Bonus: bonus(SynergyBonus{Health: 140})},
			{Count: 4, Effect: "Last stand: bonus attack when an ally dies", Bonus: bonus(SynergyBonus{Attack: 22})},
		},
	},
}

var RoleSynergies = []SynergyConfig{
	{
		Key: RoleAttacker, Name: "Attackers", Type: "role",
		Thresholds: []SynergyThreshold{
			{Count: 2, Effect: "Bonus attack speed", Bonus: bonus(SynergyBonus{Speed: 10})},
			{Count: 4, Effect: "Higher attack speed and attack", Bonus: bonus(SynergyBonus{Speed: 18, Attack: 12})},
		},
	},
	{
		Key: RoleTank, Name: "Tanks", Type: "role",
		Thresholds: []SynergyThreshold{
			{Count: 2, Effect: "Bonus shield", Bonus: bonus(SynergyBonus{Shield: 25})},
			{Count: 4, Effect: "Extra health and shield", Bonus: bonus(SynergyBonus{Health: 160, Shield: 35})},
		},
	},
	{
		Key: RoleSupport, Name: "Supports", Type: "role",
		Thresholds: []SynergyThreshold{
			{Count: 2, Effect: "Periodic healing pulse", Bonus: bonus(SynergyBonus{Health: 80})},
			{Count: 4, Effect: "Bigger heals and ability power", Bonus: bonus(SynergyBonus{Health: 140, AbilityPower: 15})},
		},
	},
	{
		Key: RoleControl, Name: "Controllers", Type: "role",
		Thresholds: []SynergyThreshold{
			{Count: 2, Effect: "First attack slows target", Bonus: bonus(SynergyBonus{Speed: 6})},
			{Count: 4, Effect: "Increased stun chance on hit", Bonus: bonus(SynergyBonus{Speed: 12})},
		},
	},
}
