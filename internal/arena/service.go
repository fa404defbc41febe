package arena

import (
	"sync"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/grandline/autobattler/internal/formation"
	"github.com/grandline/autobattler/internal/gamedata"
)

var (
	ErrNoFormation = eris.New("no formation set")
	ErrEmptyRoster = eris.New("formation has no combat-capable units")
)

// Collaborators are the inbound lookups the core consumes from the shop and
// formation subsystems. They must be safe for concurrent use.
type Collaborators struct {
	Formation func(userID string) (formation.State, bool)
	UnitDef   func(unitID string) (gamedata.UnitDefinition, bool)
	Wave      func(index int) (gamedata.PveWave, bool)
	// LockFormation freezes or releases a user's formation for the duration of
	// a match. Optional.
	LockFormation func(userID string, locked bool)
}

// BattleRecorder receives per-battle figures for the daily leaderboards.
type BattleRecorder interface {
	RecordBattle(username string, damage, ticks int)
}

// Options tune the service timers. Zero values fall back to the defaults.
type Options struct {
	BotWait       time.Duration // delay before a queued user is paired with the bot
	RoundInterval time.Duration // delay between match rounds
}

// Service owns the matchmaking queue, the bot fallback timers, and every
// active match's round scheduler. One mutex guards all of it: each entry point
// (queue join/leave, timer callback, disconnect) runs start-to-finish under
// the lock, so mutations never interleave - the Go rendition of the original
// single-threaded event loop.
type Service struct {
	log    zerolog.Logger
	sink   EventSink
	users  *Registry
	collab Collaborators
	stats  BattleRecorder
	opts   Options

	mu          sync.Mutex
	queue       []string
	queuedSince map[string]time.Time
	botTimers   map[string]*time.Timer
	matches     map[string]*Match
	matchByUser map[string]string
}

func NewService(log zerolog.Logger, sink EventSink, users *Registry, collab Collaborators, stats BattleRecorder, opts Options) *Service {
	if opts.BotWait <= 0 {
		opts.BotWait = 1000 * time.Millisecond
	}
	if opts.RoundInterval <= 0 {
		opts.RoundInterval = 4000 * time.Millisecond
	}
	return &Service{
		log:         log.With().Str("component", "arena").Logger(),
		sink:        sink,
		users:       users,
		collab:      collab,
		stats:       stats,
		opts:        opts,
		queuedSince: map[string]time.Time{},
		botTimers:   map[string]*time.Timer{},
		matches:     map[string]*Match{},
		matchByUser: map[string]string{},
	}
}

func (s *Service) setFormationLockLocked(userID string, locked bool) {
	if s.collab.LockFormation != nil {
		s.collab.LockFormation(userID, locked)
	}
}

// queuePositionLocked returns the 1-based position, or 0 if not queued.
func (s *Service) queuePositionLocked(userID string) int {
	for i, id := range s.queue {
		if id == userID {
			return i + 1
		}
	}
	return 0
}

// Enqueue appends a user to the waiting list and tries to drain pairs. If the
// user is already queued this is a no-op reporting their existing position.
// With allowBot set, a one-shot bot fallback timer is armed (idempotently).
func (s *Service) Enqueue(userID string, allowBot bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pos := s.queuePositionLocked(userID); pos > 0 {
		return pos
	}
	s.queue = append(s.queue, userID)
	s.queuedSince[userID] = time.Now()
	pos := len(s.queue)
	s.log.Info().Str("user", userID).Bool("allowBot", allowBot).Int("position", pos).Msg("queue: joined")

	if allowBot {
		s.armBotFallbackLocked(userID)
	}
	s.drainPairsLocked()
	return pos
}

// Leave removes the user from the queue and cancels any pending bot fallback.
// Idempotent.
func (s *Service) Leave(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFromQueueLocked(userID)
}

// Disconnect is invoked by the transport when a user's connection drops. It
// synchronously clears the queue entry and bot timer so no dangling pairing
// can involve the user.
func (s *Service) Disconnect(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeFromQueueLocked(userID)
}

func (s *Service) removeFromQueueLocked(userID string) {
	for i, id := range s.queue {
		if id == userID {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			delete(s.queuedSince, userID)
			s.log.Info().Str("user", userID).Msg("queue: left")
			break
		}
	}
	s.cancelBotFallbackLocked(userID)
}

func (s *Service) armBotFallbackLocked(userID string) {
	if _, armed := s.botTimers[userID]; armed {
		return
	}
	s.botTimers[userID] = time.AfterFunc(s.opts.BotWait, func() { s.pairWithBot(userID) })
}

func (s *Service) cancelBotFallbackLocked(userID string) {
	if t, ok := s.botTimers[userID]; ok {
		t.Stop()
		delete(s.botTimers, userID)
	}
}

// pairWithBot fires when the bot fallback timer expires. If the user is still
// queued (a human pairing did not win the race) they are pulled out and
// matched against the bot, bypassing the pair drain entirely.
func (s *Service) pairWithBot(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.botTimers, userID)
	if s.queuePositionLocked(userID) == 0 {
		return
	}
	for i, id := range s.queue {
		if id == userID {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			break
		}
	}
	delete(s.queuedSince, userID)
	if !s.sink.Connected(userID) {
		return
	}
	s.log.Info().Str("user", userID).Msg("matchmaker: bot fallback fired")
	s.createMatchLocked(userID, BotID)
}

// drainPairsLocked pairs the two oldest waiters while at least two remain.
// If a drained user's connection is gone (a disconnect raced the pairing),
// the still-connected side goes back to the front of the queue with bot
// fallback re-armed and the stale side is discarded silently.
func (s *Service) drainPairsLocked() {
	for len(s.queue) >= 2 {
		first, second := s.queue[0], s.queue[1]
		s.queue = s.queue[2:]
		s.cancelBotFallbackLocked(first)
		s.cancelBotFallbackLocked(second)

		firstOK := s.sink.Connected(first)
		secondOK := s.sink.Connected(second)
		if firstOK && secondOK {
			delete(s.queuedSince, first)
			delete(s.queuedSince, second)
			s.createMatchLocked(first, second)
			continue
		}

		survivor := ""
		if firstOK {
			survivor = first
			delete(s.queuedSince, second)
		} else if secondOK {
			survivor = second
			delete(s.queuedSince, first)
		} else {
			delete(s.queuedSince, first)
			delete(s.queuedSince, second)
			continue
		}
		s.log.Warn().Str("user", survivor).Msg("matchmaker: pairing raced a disconnect, requeueing survivor")
		s.queue = append([]string{survivor}, s.queue...)
		s.armBotFallbackLocked(survivor)
	}
}

// QueueSnapshot lists the current waiters in FIFO order for the lobby view.
func (s *Service) QueueSnapshot() []QueueEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]QueueEntry, 0, len(s.queue))
	for _, id := range s.queue {
		entry := QueueEntry{ID: id, Since: s.queuedSince[id].Unix()}
		if u, ok := s.users.Get(id); ok {
			entry.Username = u.Username
		}
		out = append(out, entry)
	}
	return out
}

// ActiveMatches reports how many matches are currently running.
func (s *Service) ActiveMatches() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.matches)
}

// QueueDepth reports how many users are currently waiting.
func (s *Service) QueueDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}
