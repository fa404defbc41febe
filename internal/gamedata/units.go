package gamedata

// Units is the full catalog. Image paths are placeholder slugs for now.
var Units = []UnitDefinition{
	{ID: "luffy", Name: "Monkey D. Luffy", Faction: FactionStrawHat, Role: RoleAttacker, Tier: 3, Power: 58, Health: 620, AbilityType: "cast", AbilityValue: 90, AbilityDescription: "Gum-Gum Gatling deals bonus damage", Image: "img/luffy.png"},
	{ID: "zoro", Name: "Roronoa Zoro", Faction: FactionStrawHat, Role: RoleAttacker, Tier: 3, Power: 62, Health: 600, AbilityType: "cast", AbilityValue: 85, AbilityDescription: "Three-Sword Slash hits closest enemies", Image: "img/zoro.png"},
	{ID: "nami", Name: "Nami", Faction: FactionStrawHat, Role: RoleControl, Tier: 2, Power: 32, Health: 420, AbilityType: "cast", AbilityValue: 60, AbilityDescription: "Thundercloud slows and shocks", Image: "img/nami.png"},
	{ID: "usopp", Name: "Usopp", Faction: FactionStrawHat, Role: RoleAttacker, Tier: 2, Power: 40, Health: 430, AbilityType: "on_hit", AbilityValue: 35, AbilityDescription: "Sniper shots have bonus crit", Image: "img/usopp.png"},
	{ID: "sanji", Name: "Vinsmoke Sanji", Faction: FactionStrawHat, Role: RoleAttacker, Tier: 3, Power: 55, Health: 560, AbilityType: "on_hit", AbilityValue: 45, AbilityDescription: "Black Leg kicks ignite briefly", Image: "img/sanji.png"},
	{ID: "chopper", Name: "Tony Tony Chopper", Faction: FactionStrawHat, Role: RoleSupport, Tier: 2, Power: 28, Health: 520, AbilityType: "cast", AbilityValue: 55, AbilityDescription: "Transforms to heal allies", Image: "img/chopper.png"},
	{ID: "robin", Name: "Nico Robin", Faction: FactionStrawHat, Role: RoleControl, Tier: 3, Power: 36, Health: 510, AbilityType: "cast", AbilityValue: 70, AbilityDescription: "Clutch immobilizes targets", Image: "img/robin.png"},
	{ID: "franky", Name: "Franky", Faction: FactionStrawHat, Role: RoleTank, Tier: 3, Power: 48, Health: 700, AbilityType: "passive", AbilityValue: 40, AbilityDescription: "Iron body reduces damage", Image: "img/franky.png"},
	{ID: "brook", Name: "Brook", Faction: FactionStrawHat, Role: RoleSupport, Tier: 2, Power: 34, Health: 470, AbilityType: "on_death", AbilityValue: 60, AbilityDescription: "Soul music speeds allies", Image: "img/brook.png"},
	{ID: "jinbe", Name: "Jinbe", Faction: FactionStrawHat, Role: RoleTank, Tier: 4, Power: 52, Health: 820, AbilityType: "cast", AbilityValue: 75, AbilityDescription: "Fishman Karate shields allies", Image: "img/jinbe.png"},

	{ID: "smoker", Name: "Smoker", Faction: FactionNavy, Role: RoleControl, Tier: 3, Power: 50, Health: 640, AbilityType: "cast", AbilityValue: 80, AbilityDescription: "Smoke binds frontline enemies", Image: "img/smoker.png"},
	{ID: "tashigi", Name: "Tashigi", Faction: FactionNavy, Role: RoleAttacker, Tier: 2, Power: 42, Health: 480, AbilityType: "on_hit", AbilityValue: 30, AbilityDescription: "Swift strikes reduce armor", Image: "img/tashigi.png"},
	{ID: "kizaru", Name: "Borsalino", Faction: FactionNavy, Role: RoleAttacker, Tier: 4, Power: 70, Health: 700, AbilityType: "cast", AbilityValue: 95, AbilityDescription: "Light beams pierce backline", Image: "img/kizaru.png"},
	{ID: "akainu", Name: "Sakazuki", Faction: FactionNavy, Role: RoleAttacker, Tier: 5, Power: 78, Health: 820, AbilityType: "cast", AbilityValue: 120, AbilityDescription: "Magma fist melts defenses", Image: "img/akainu.png"},
	{ID: "aokiji", Name: "Kuzan", Faction: FactionNavy, Role: RoleControl, Tier: 4, Power: 60, Health: 760, AbilityType: "cast", AbilityValue: 100, AbilityDescription: "Ice age freezes an area", Image: "img/aokiji.png"},
	{ID: "garp", Name: "Monkey D. Garp", Faction: FactionNavy, Role: RoleTank, Tier: 4, Power: 66, Health: 880, AbilityType: "passive", AbilityValue: 50, AbilityDescription: "Iron fist shields allies", Image: "img/garp.png"},
	{ID: "coby", Name: "Coby", Faction: FactionNavy, Role: RoleSupport, Tier: 1, Power: 26, Health: 420, AbilityType: "cast", AbilityValue: 45, AbilityDescription: "Inspires allies with courage", Image: "img/coby.png"},

	{ID: "kaido", Name: "Kaido", Faction: FactionBeastPirates, Role: RoleTank, Tier: 5, Power: 85, Health: 1100, AbilityType: "cast", AbilityValue: 140, AbilityDescription: "Dragon form breathes fire", Image: "img/kaido.png"},
	{ID: "king", Name: "King", Faction: FactionBeastPirates, Role: RoleTank, Tier: 4, Power: 62, Health: 900, AbilityType: "passive", AbilityValue: 60, AbilityDescription: "Lunarian flames reduce damage", Image: "img/king.png"},
	{ID: "queen", Name: "Queen", Faction: FactionBeastPirates, Role: RoleSupport, Tier: 4, Power: 58, Health: 880, AbilityType: "cast", AbilityValue: 85, AbilityDescription: "Plague devices weaken foes", Image: "img/queen.png"},
	{ID: "jack", Name: "Jack", Faction: FactionBeastPirates, Role: RoleTank, Tier: 3, Power: 54, Health: 820, AbilityType: "on_hit", AbilityValue: 45, AbilityDescription: "Mammoth charges knock back", Image: "img/jack.png"},
	{ID: "ulti", Name: "Ulti", Faction: FactionBeastPirates, Role: RoleControl, Tier: 2, Power: 46, Health: 620, AbilityType: "cast", AbilityValue: 65, AbilityDescription: "Headbutt stuns one target", Image: "img/ulti.png"},
	{ID: "page_one", Name: "Page One", Faction: FactionBeastPirates, Role: RoleAttacker, Tier: 2, Power: 44, Health: 600, AbilityType: "on_hit", AbilityValue: 38, AbilityDescription: "Dino claws rend armor", Image: "img/page_one.png"},

	{ID: "mihawk", Name: "Dracule Mihawk", Faction: FactionWarlords, Role: RoleAttacker, Tier: 5, Power: 90, Health: 780, AbilityType: "cast", AbilityValue: 130, AbilityDescription: "Black blade cleaves a line", Image: "img/mihawk.png"},
	{ID: "crocodile", Name: "Crocodile", Faction: FactionWarlords, Role: RoleControl, Tier: 4, Power: 55, Health: 750, AbilityType: "cast", AbilityValue: 90, AbilityDescription: "Sandstorm drains and slows", Image: "img/crocodile.png"},
	{ID: "kuma", Name: "Bartholomew Kuma", Faction: FactionWarlords, Role: RoleTank, Tier: 4, Power: 60, Health: 920, AbilityType: "cast", AbilityValue: 95, AbilityDescription: "Paw repel shields allies", Image: "img/kuma.png"},
	{ID: "doflamingo", Name: "Donquixote Doflamingo", Faction: FactionWarlords, Role: RoleControl, Tier: 4, Power: 62, Health: 760, AbilityType: "cast", AbilityValue: 100, AbilityDescription: "Strings bind multiple foes", Image: "img/doflamingo.png"},
	{ID: "boa", Name: "Boa Hancock", Faction: FactionWarlords, Role: RoleControl, Tier: 3, Power: 50, Health: 640, AbilityType: "cast", AbilityValue: 80, AbilityDescription: "Love beam petrifies briefly", Image: "img/boa.png"},
	{ID: "moria", Name: "Gecko Moria", Faction: FactionWarlords, Role: RoleSupport, Tier: 3, Power: 42, Health: 720, AbilityType: "on_death", AbilityValue: 70, AbilityDescription: "Shadows empower allies", Image: "img/moria.png"},

	{ID: "dragon", Name: "Monkey D. Dragon", Faction: FactionRevolutionary, Role: RoleSupport, Tier: 5, Power: 68, Health: 880, AbilityType: "cast", AbilityValue: 110, AbilityDescription: "Storm grants shields teamwide", Image: "img/dragon.png"},
	{ID: "sabo", Name: "Sabo", Faction: FactionRevolutionary, Role: RoleAttacker, Tier: 4, Power: 66, Health: 720, AbilityType: "cast", AbilityValue: 95, AbilityDescription: "Flame fist burns through lines", Image: "img/sabo.png"},
	{ID: "ivankov", Name: "Emporio Ivankov", Faction: FactionRevolutionary, Role: RoleSupport, Tier: 3, Power: 38, Health: 670, AbilityType: "cast", AbilityValue: 75, AbilityDescription: "Hormone boost heals allies", Image: "img/ivankov.png"},
	{ID: "koala", Name: "Koala", Faction: FactionRevolutionary, Role: RoleControl, Tier: 2, Power: 34, Health: 520, AbilityType: "on_hit", AbilityValue: 30, AbilityDescription: "Fishman karate trips targets", Image: "img/koala.png"},

	{ID: "law", Name: "Trafalgar Law", Faction: FactionSupernova, Role: RoleControl, Tier: 4, Power: 60, Health: 700, AbilityType: "cast", AbilityValue: 100, AbilityDescription: "Room swaps and cuts foes", Image: "img/law.png"},
	{ID: "kid", Name: "Eustass Kid", Faction: FactionSupernova, Role: RoleAttacker, Tier: 4, Power: 64, Health: 760, AbilityType: "cast", AbilityValue: 95, AbilityDescription: "Magnet slam pulls enemies", Image: "img/kid.png"},
	{ID: "killer", Name: "Killer", Faction: FactionSupernova, Role: RoleAttacker, Tier: 3, Power: 56, Health: 640, AbilityType: "on_hit", AbilityValue: 48, AbilityDescription: "Buzz-saw attacks bleed", Image: "img/killer.png"},
	{ID: "bonney", Name: "Jewelry Bonney", Faction: FactionSupernova, Role: RoleSupport, Tier: 2, Power: 30, Health: 520, AbilityType: "cast", AbilityValue: 55, AbilityDescription: "Appetite buff heals allies", Image: "img/bonney.png"},
	{ID: "drake", Name: "X-Drake", Faction: FactionSupernova, Role: RoleTank, Tier: 3, Power: 52, Health: 760, AbilityType: "on_hit", AbilityValue: 44, AbilityDescription: "Dino form grants damage resist", Image: "img/drake.png"},
	{ID: "hawkins", Name: "Basil Hawkins", Faction: FactionSupernova, Role: RoleControl, Tier: 3, Power: 46, Health: 640, AbilityType: "on_death", AbilityValue: 65, AbilityDescription: "Straw voodoo redirects damage", Image: "img/hawkins.png"},

	{ID: "lucci", Name: "Rob Lucci", Faction: FactionCP9, Role: RoleAttacker, Tier: 4, Power: 62, Health: 700, AbilityType: "on_hit", AbilityValue: 55, AbilityDescription: "Rokushiki strikes shred armor", Image: "img/lucci.png"},
	{ID: "kaku", Name: "Kaku", Faction: FactionCP9, Role: RoleAttacker, Tier: 3, Power: 50, Health: 620, AbilityType: "cast", AbilityValue: 70, AbilityDescription: "Giraffe spin cleaves foes", Image: "img/kaku.png"},
	{ID: "jabra", Name: "Jabra", Faction: FactionCP9, Role: RoleAttacker, Tier: 2, Power: 42, Health: 580, AbilityType: "on_hit", AbilityValue: 36, AbilityDescription: "Wolf claws stack bleed", Image: "img/jabra.png"},
	{ID: "kalifa", Name: "Kalifa", Faction: FactionCP9, Role: RoleControl, Tier: 2, Power: 34, Health: 520, AbilityType: "cast", AbilityValue: 60, AbilityDescription: "Soap bubbles silence briefly", Image: "img/kalifa.png"},
	{ID: "blueno", Name: "Blueno", Faction: FactionCP9, Role: RoleTank, Tier: 2, Power: 38, Health: 640, AbilityType: "passive", AbilityValue: 35, AbilityDescription: "Door-door evasion shield", Image: "img/blueno.png"},

	{ID: "whitebeard", Name: "Edward Newgate", Faction: FactionWhitebeard, Role: RoleTank, Tier: 5, Power: 92, Health: 1150, AbilityType: "cast", AbilityValue: 150, AbilityDescription: "Quake punch shatters terrain", Image: "img/whitebeard.png"},
	{ID: "marco", Name: "Marco", Faction: FactionWhitebeard, Role: RoleSupport, Tier: 4, Power: 54, Health: 820, AbilityType: "on_death", AbilityValue: 90, AbilityDescription: "Phoenix flames revive briefly", Image: "img/marco.png"},
	{ID: "jozu", Name: "Jozu", Faction: FactionWhitebeard, Role: RoleTank, Tier: 4, Power: 60, Health: 980, AbilityType: "passive", AbilityValue: 55, AbilityDescription: "Diamond body reduces damage", Image: "img/jozu.png"},
	{ID: "vista", Name: "Vista", Faction: FactionWhitebeard, Role: RoleAttacker, Tier: 3, Power: 58, Health: 740, AbilityType: "on_hit", AbilityValue: 46, AbilityDescription: "Flower blade parries and strikes", Image: "img/vista.png"},
	{ID: "ace", Name: "Portgas D. Ace", Faction: FactionWhitebeard, Role: RoleAttacker, Tier: 4, Power: 68, Health: 760, AbilityType: "cast", AbilityValue: 105, AbilityDescription: "Flame commandment blasts area", Image: "img/ace.png"},
}

var unitsByID = func() map[string]UnitDefinition {
	m := make(map[string]UnitDefinition, len(Units))
	for _, u := range Units {
		m[u.ID] = u
	}
	return m
}()

// UnitByID looks up a catalog definition.
func UnitByID(id string) (UnitDefinition, bool) {
	u, ok := unitsByID[id]
	return u, ok
}
