// Package stats keeps in-memory daily battle leaderboards.
package stats

import (
	"sync"
	"time"
)

type TopDamage struct {
	Username string `json:"username"`
	Damage   int    `json:"damage"`
	Time     int64  `json:"time"`
}

type LongestBattle struct {
	Username string `json:"username"`
	Ticks    int    `json:"ticks"`
	Time     int64  `json:"time"`
}

type Daily struct {
	Date          string        `json:"date"`
	TopDamage     TopDamage     `json:"top_damage"`
	LongestBattle LongestBattle `json:"longest_battle"`
}

// Tracker records per-battle figures and keeps the best of the current UTC
// day. The day rolls over lazily on access and eagerly via Rollover (run from
// a scheduled job) so an idle server still flips at midnight.
type Tracker struct {
	mu    sync.Mutex
	state Daily
}

func today() string { return time.Now().UTC().Format("2006-01-02") }

func NewTracker() *Tracker {
	return &Tracker{state: Daily{Date: today()}}
}

func (t *Tracker) rollLocked() {
	if d := today(); t.state.Date != d {
		t.state = Daily{Date: d}
	}
}

// RecordBattle updates the daily bests with one side's battle figures.
func (t *Tracker) RecordBattle(username string, damage, ticks int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollLocked()
	now := time.Now().Unix()
	if damage > t.state.TopDamage.Damage {
		t.state.TopDamage = TopDamage{Username: username, Damage: damage, Time: now}
	}
	if ticks > t.state.LongestBattle.Ticks {
		t.state.LongestBattle = LongestBattle{Username: username, Ticks: ticks, Time: now}
	}
}

// Snapshot returns today's leaderboard.
func (t *Tracker) Snapshot() Daily {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollLocked()
	return t.state
}

// Rollover forces the daily reset check.
func (t *Tracker) Rollover() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rollLocked()
}
