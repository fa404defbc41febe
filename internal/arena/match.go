package arena

import (
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/grandline/autobattler/internal/battle"
)

// Flat post-battle damage: each surviving enemy unit costs the loser 2 hp.
const damagePerSurvivor = 2

// createMatchLocked forms a match, notifies both participants, and arms the
// first round timer. Matches transition created -> running at formation.
func (s *Service) createMatchLocked(p1, p2 string) {
	m := &Match{
		ID:         uuid.NewString(),
		Players:    [2]string{p1, p2},
		CreatedAt:  time.Now(),
		RoundOrder: append([]RoundKind(nil), DefaultRoundOrder...),
		state:      matchRunning,
		waveIndex:  map[string]int{},
	}
	s.matches[m.ID] = m
	isBot := p2 == BotID

	for i, p := range m.Players {
		if p == BotID {
			continue
		}
		s.matchByUser[p] = m.ID
		m.waveIndex[p] = 1
		s.users.ResetHP(p)
		s.setFormationLockLocked(p, true)
		s.sink.MatchFound(p, m.ID, s.identityLocked(m.Players[1-i]), isBot)
		s.sink.PlayerHP(p, startingHP)
	}

	s.log.Info().Str("match", m.ID).Str("p1", p1).Str("p2", p2).Bool("bot", isBot).Msg("match: created")
	m.timer = time.AfterFunc(s.opts.RoundInterval, func() { s.runRound(m.ID) })
}

func (s *Service) identityLocked(participant string) Identity {
	if participant == BotID {
		return Identity{ID: BotID, Username: BotName}
	}
	if u, ok := s.users.Get(participant); ok {
		return Identity{ID: u.ID, Username: u.Username}
	}
	return Identity{ID: participant, Username: "Pirate"}
}

func (m *Match) humans() []string {
	out := make([]string, 0, 2)
	for _, p := range m.Players {
		if p != BotID {
			out = append(out, p)
		}
	}
	return out
}

// runRound is the per-match timer callback. It resolves exactly one round,
// applies the outcome, and re-arms the timer unless the match ended. Round
// n+1 is never scheduled before this callback has fully applied round n.
func (s *Service) runRound(matchID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.matches[matchID]
	if !ok || m.state != matchRunning {
		return
	}

	kind := m.roundKind()
	if m.Players[1] == BotID {
		// The bot side has no User record whose hp could decrease, so
		// bot matches always resolve PVE-style against the wave ladder.
		kind = RoundPVE
	}
	roundNum := m.RoundIndex + 1

	var err error
	switch kind {
	case RoundPVP:
		err = s.runPVPRoundLocked(m, roundNum)
	default:
		err = s.runPVERoundLocked(m, roundNum)
	}
	if err != nil {
		// Rejected round: nothing mutated, the index stays put, and the
		// round retries on the next interval.
		s.log.Warn().Str("match", m.ID).Int("round", roundNum).Err(err).Msg("match: round rejected")
		for _, p := range m.humans() {
			s.sink.RoundRejected(p, err.Error())
		}
		m.timer = time.AfterFunc(s.opts.RoundInterval, func() { s.runRound(m.ID) })
		return
	}

	m.RoundIndex++
	if s.checkMatchEndLocked(m) {
		return
	}
	m.timer = time.AfterFunc(s.opts.RoundInterval, func() { s.runRound(m.ID) })
}

// rosterForLocked builds a participant's combat roster from their current
// formation. Missing formation and empty roster are rejected operations: a
// human's round never silently runs with no combatants.
func (s *Service) rosterForLocked(userID string) ([]battle.CombatUnit, error) {
	ident := s.identityLocked(userID)
	f, ok := s.collab.Formation(userID)
	if !ok {
		return nil, eris.Wrapf(ErrNoFormation, "%s", ident.Username)
	}
	roster := battle.FromFormation(f, s.collab.UnitDef)
	if len(roster) == 0 {
		return nil, eris.Wrapf(ErrEmptyRoster, "%s", ident.Username)
	}
	return roster, nil
}

// runPVERoundLocked pits every human participant against their current wave.
// All rosters are validated before any battle resolves so a rejection leaves
// the round entirely unapplied.
func (s *Service) runPVERoundLocked(m *Match, roundNum int) error {
	humans := m.humans()
	rosters := make(map[string][]battle.CombatUnit, len(humans))
	for _, p := range humans {
		roster, err := s.rosterForLocked(p)
		if err != nil {
			return err
		}
		rosters[p] = roster
	}

	for _, p := range humans {
		wave, ok := s.collab.Wave(m.waveIndex[p])
		if !ok {
			return eris.Errorf("no wave defined for index %d", m.waveIndex[p])
		}
		s.sink.RoundStart(p, RoundPVE, wave.Name, roundNum)

		res := battle.Resolve(rosters[p], battle.FromWave(wave))
		result := RoundResult{Kind: RoundPVE, Round: roundNum, Battle: res, WaveIndex: m.waveIndex[p]}
		switch res.Winner {
		case battle.WinnerPlayer:
			result.Outcome = "win"
			result.RewardCoins = wave.RewardCoins
			result.RewardXP = wave.RewardXP
			s.users.AddRewards(p, wave.RewardCoins, wave.RewardXP)
			m.waveIndex[p]++
			result.WaveIndex = m.waveIndex[p]
		case battle.WinnerEnemy:
			result.Outcome = "loss"
			if hp, ok := s.users.ApplyDamage(p, res.SurvivorsEnemy*damagePerSurvivor); ok {
				s.sink.PlayerHP(p, hp)
			}
		default:
			result.Outcome = "draw"
		}
		s.recordBattleLocked(p, rosters[p], res)
		s.sink.RoundResult(p, result)
		s.log.Info().Str("match", m.ID).Int("round", roundNum).Str("user", p).
			Str("wave", wave.Name).Str("winner", res.Winner).Int("ticks", res.Ticks).Msg("match: pve round resolved")
	}
	return nil
}

// runPVPRoundLocked resolves one battle between the two human rosters and
// applies flat survivor damage to the loser.
func (s *Service) runPVPRoundLocked(m *Match, roundNum int) error {
	p1, p2 := m.Players[0], m.Players[1]
	roster1, err := s.rosterForLocked(p1)
	if err != nil {
		return err
	}
	roster2, err := s.rosterForLocked(p2)
	if err != nil {
		return err
	}

	s.sink.RoundStart(p1, RoundPVP, s.identityLocked(p2).Username, roundNum)
	s.sink.RoundStart(p2, RoundPVP, s.identityLocked(p1).Username, roundNum)

	res := battle.Resolve(roster1, roster2)

	outcome1, outcome2 := "draw", "draw"
	switch res.Winner {
	case battle.WinnerPlayer:
		outcome1, outcome2 = "win", "loss"
		if hp, ok := s.users.ApplyDamage(p2, res.SurvivorsPlayer*damagePerSurvivor); ok {
			s.sink.PlayerHP(p2, hp)
		}
	case battle.WinnerEnemy:
		outcome1, outcome2 = "loss", "win"
		if hp, ok := s.users.ApplyDamage(p1, res.SurvivorsEnemy*damagePerSurvivor); ok {
			s.sink.PlayerHP(p1, hp)
		}
	}

	s.recordBattleLocked(p1, roster1, res)
	s.recordBattleLocked(p2, roster2, res)
	s.sink.RoundResult(p1, RoundResult{Kind: RoundPVP, Round: roundNum, Outcome: outcome1, Battle: res})
	s.sink.RoundResult(p2, RoundResult{Kind: RoundPVP, Round: roundNum, Outcome: outcome2, Battle: res})
	s.log.Info().Str("match", m.ID).Int("round", roundNum).Str("winner", res.Winner).
		Int("ticks", res.Ticks).Msg("match: pvp round resolved")
	return nil
}

// recordBattleLocked feeds the daily leaderboards with the damage one side
// dealt over the whole battle. Attribution goes by instance id, not name: in a
// mirror pvp both sides field identical catalog names.
func (s *Service) recordBattleLocked(userID string, roster []battle.CombatUnit, res battle.Result) {
	if s.stats == nil {
		return
	}
	ids := make(map[string]bool, len(roster))
	for _, u := range roster {
		ids[u.ID] = true
	}
	damage := 0
	for _, tick := range res.Log {
		for _, a := range tick.Actions {
			if ids[a.AttackerID] {
				damage += a.Damage
			}
		}
	}
	s.stats.RecordBattle(s.identityLocked(userID).Username, damage, res.Ticks)
}

// checkMatchEndLocked ends the match once at most one participant still has
// positive health. The bot sentinel counts as always alive. The timer is
// cleared exactly once and the match record discarded; re-arming after this
// is impossible because runRound checks the match table first.
func (s *Service) checkMatchEndLocked(m *Match) bool {
	alive := make([]string, 0, 2)
	for _, p := range m.Players {
		if p == BotID {
			alive = append(alive, BotName)
			continue
		}
		if u, ok := s.users.Get(p); ok && u.HP > 0 {
			alive = append(alive, u.Username)
		}
	}
	if len(alive) > 1 {
		return false
	}

	winner := "draw"
	if len(alive) == 1 {
		winner = alive[0]
	}
	m.state = matchEnded
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	for _, p := range m.humans() {
		s.setFormationLockLocked(p, false)
		s.sink.MatchEnd(p, winner)
		if s.matchByUser[p] == m.ID {
			delete(s.matchByUser, p)
		}
	}
	delete(s.matches, m.ID)
	s.log.Info().Str("match", m.ID).Str("winner", winner).Int("rounds", m.RoundIndex).Msg("match: ended")
	return true
}
