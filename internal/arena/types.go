package arena

import (
	"time"

	"github.com/grandline/autobattler/internal/battle"
)

// RoundKind discriminates the two battle modes in a match's round sequence.
type RoundKind string

const (
	RoundPVE RoundKind = "pve"
	RoundPVP RoundKind = "pvp"
)

// BotID is the sentinel participant id for a synthetic opponent. The bot never
// holds a User record: it only ever appears as an opponent roster.
const (
	BotID   = "bot"
	BotName = "Training Dummy"
)

// DefaultRoundOrder is the fixed sequence a fresh match walks through. Once
// the index runs past it, every further round is PVP.
var DefaultRoundOrder = []RoundKind{RoundPVE, RoundPVE, RoundPVP, RoundPVE, RoundPVP, RoundPVP, RoundPVP}

// User is the live record for one logical account. Created on first login,
// never deleted; hp/coins/xp mutate across rounds within a session.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	HP       int    `json:"hp"`
	Coins    int    `json:"coins"`
	XP       int    `json:"xp"`
	MMR      int    `json:"mmr"`
}

// Identity is the opponent-facing view of a participant.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type matchState int

const (
	matchRunning matchState = iota
	matchEnded
)

// Match is one active session between two participants. The second participant
// may be the bot sentinel. The round timer handle is owned here; at most one
// timer is pending per match at any time.
type Match struct {
	ID         string
	Players    [2]string
	CreatedAt  time.Time
	RoundIndex int
	RoundOrder []RoundKind

	state     matchState
	timer     *time.Timer
	waveIndex map[string]int // per human participant, 1-based
}

// roundKind returns the kind for the current round index, extending past the
// configured order with PVP.
func (m *Match) roundKind() RoundKind {
	if m.RoundIndex < len(m.RoundOrder) {
		return m.RoundOrder[m.RoundIndex]
	}
	return RoundPVP
}

// RoundResult is what each participant learns about a resolved round.
type RoundResult struct {
	Kind        RoundKind     `json:"kind"`
	Round       int           `json:"round"`
	Outcome     string        `json:"outcome"` // win | loss | draw, from this player's perspective
	Battle      battle.Result `json:"battle"`
	WaveIndex   int           `json:"waveIndex,omitempty"` // next wave after a PVE round
	RewardCoins int           `json:"rewardCoins,omitempty"`
	RewardXP    int           `json:"rewardXp,omitempty"`
}

// EventSink is where the scheduler writes outbound notifications. Delivery is
// fire-and-forget and at-most-once: a sink silently drops events for users
// with no live connection. Implementations must not call back into the
// Service.
type EventSink interface {
	// Connected reports whether the user has a live connection right now.
	Connected(userID string) bool
	MatchFound(userID string, matchID string, opponent Identity, isBot bool)
	RoundStart(userID string, kind RoundKind, label string, round int)
	RoundResult(userID string, result RoundResult)
	RoundRejected(userID string, reason string)
	PlayerHP(userID string, hp int)
	MatchEnd(userID string, winner string)
}

// QueueEntry is the lobby-facing view of a waiting player.
type QueueEntry struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Since    int64  `json:"since"` // unix seconds
}
