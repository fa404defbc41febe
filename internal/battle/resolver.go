package battle

// MaxTicks is the hard cap on a single battle. Stalemates (e.g. two units that
// cannot bring each other to 0) end in a draw at this cap instead of looping.
const MaxTicks = 30

// Winner values in a Result.
const (
	WinnerPlayer = "player"
	WinnerEnemy  = "enemy"
	WinnerDraw   = "draw"
)

// CombatUnit is one combatant. IDs are stable within a battle and attribute
// log entries; Role is a display tag the resolver itself never consults.
type CombatUnit struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Power  int    `json:"power"`
	Health int    `json:"health"`
	Role   string `json:"role"`
}

// Action records a single attack within a tick. Attacker and Target are
// display names and may collide across sides; the ids pin the action to a
// specific roster entry.
type Action struct {
	Attacker        string `json:"attacker"`
	AttackerID      string `json:"attackerId"`
	Target          string `json:"target"`
	TargetID        string `json:"targetId"`
	Damage          int    `json:"damage"`
	TargetRemaining int    `json:"targetRemaining"`
}

// TickLog is the ordered action list for one tick. Empty ticks are logged too.
type TickLog struct {
	Tick    int      `json:"tick"`
	Actions []Action `json:"actions"`
}

// Result is the fully determined outcome of one resolver invocation.
type Result struct {
	Winner          string    `json:"winner"`
	Ticks           int       `json:"ticks"`
	SurvivorsPlayer int       `json:"survivorsPlayer"`
	SurvivorsEnemy  int       `json:"survivorsEnemy"`
	Log             []TickLog `json:"log"`
}

func cloneUnits(units []CombatUnit) []CombatUnit {
	out := make([]CombatUnit, len(units))
	copy(out, units)
	return out
}

func firstAlive(units []CombatUnit) *CombatUnit {
	for i := range units {
		if units[i].Health > 0 {
			return &units[i]
		}
	}
	return nil
}

func anyAlive(units []CombatUnit) bool { return firstAlive(units) != nil }

func countAlive(units []CombatUnit) int {
	n := 0
	for i := range units {
		if units[i].Health > 0 {
			n++
		}
	}
	return n
}

// attackRound lets every living attacker strike the first living defender, in
// roster order. Mutations are visible to later attackers within the same tick.
func attackRound(attackers, defenders []CombatUnit, actions []Action) []Action {
	for i := range attackers {
		if attackers[i].Health <= 0 {
			continue
		}
		target := firstAlive(defenders)
		if target == nil {
			break
		}
		target.Health -= attackers[i].Power
		remaining := target.Health
		if remaining < 0 {
			remaining = 0
		}
		actions = append(actions, Action{
			Attacker:        attackers[i].Name,
			AttackerID:      attackers[i].ID,
			Target:          target.Name,
			TargetID:        target.ID,
			Damage:          attackers[i].Power,
			TargetRemaining: remaining,
		})
	}
	return actions
}

// Resolve simulates a battle between two rosters and returns the outcome with
// a full per-tick action log. It is pure and deterministic: the inputs are
// never mutated, there is no randomness, and identical rosters (order matters)
// always produce identical results. Attacks are not simultaneous - the player
// side fully acts before the enemy side each tick.
func Resolve(playerTeam, enemyTeam []CombatUnit) Result {
	player := cloneUnits(playerTeam)
	enemy := cloneUnits(enemyTeam)

	tick := 0
	var log []TickLog
	for anyAlive(player) && anyAlive(enemy) && tick < MaxTicks {
		tick++
		actions := []Action{}
		actions = attackRound(player, enemy, actions)
		actions = attackRound(enemy, player, actions)
		log = append(log, TickLog{Tick: tick, Actions: actions})
	}

	survivorsPlayer := countAlive(player)
	survivorsEnemy := countAlive(enemy)

	winner := WinnerDraw
	if survivorsPlayer > 0 && survivorsEnemy == 0 {
		winner = WinnerPlayer
	} else if survivorsEnemy > 0 && survivorsPlayer == 0 {
		winner = WinnerEnemy
	}

	return Result{
		Winner:          winner,
		Ticks:           tick,
		SurvivorsPlayer: survivorsPlayer,
		SurvivorsEnemy:  survivorsEnemy,
		Log:             log,
	}
}
