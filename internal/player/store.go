// Package player holds each user's shop and formation state. The arena core
// reads formations through the store; the HTTP layer mutates it.
package player

import (
	"math/rand"
	"sync"

	"github.com/rotisserie/eris"

	"github.com/grandline/autobattler/internal/formation"
	"github.com/grandline/autobattler/internal/shop"
)

var ErrFormationLocked = eris.New("formation is locked while a match is running")

type record struct {
	shop      *shop.State
	formation *formation.State
}

// Store is the process-wide registry of per-user game state.
type Store struct {
	mu      sync.Mutex
	rng     *rand.Rand
	records map[string]*record
}

func NewStore(rng *rand.Rand) *Store {
	return &Store{rng: rng, records: map[string]*record{}}
}

func (s *Store) ensureLocked(userID string, coins int) *record {
	rec, ok := s.records[userID]
	if !ok {
		rec = &record{shop: shop.NewState(coins, s.rng)}
		s.records[userID] = rec
	}
	return rec
}

// EnsureShop returns the user's shop state, seeding a fresh one with the given
// starting coins on first access.
func (s *Store) EnsureShop(userID string, coins int) shop.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.ensureLocked(userID, coins).shop
}

// Reroll replaces the user's shop offer.
func (s *Store) Reroll(userID string) (shop.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.ensureLocked(userID, 0)
	if err := rec.shop.Reroll(s.rng); err != nil {
		return shop.State{}, err
	}
	return *rec.shop, nil
}

// Buy purchases a shop unit onto the bench.
func (s *Store) Buy(userID, unitID string) (shop.BenchUnit, int, shop.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.ensureLocked(userID, 0)
	bought, cost, err := rec.shop.Buy(unitID)
	if err != nil {
		return shop.BenchUnit{}, 0, shop.State{}, err
	}
	return bought, cost, *rec.shop, nil
}

// Sell removes a bench unit for a partial refund. The unit stays referenced by
// any saved formation; the round-time roster mapping degrades gracefully.
func (s *Store) Sell(userID, instanceID string) (int, shop.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.ensureLocked(userID, 0)
	refund, err := rec.shop.Sell(instanceID)
	if err != nil {
		return 0, shop.State{}, err
	}
	return refund, *rec.shop, nil
}

// SetFormation validates and saves a formation built against the user's bench.
// Rejected while the current formation is locked by a running match.
func (s *Store) SetFormation(userID string, payload formation.Payload) (formation.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.ensureLocked(userID, 0)
	if rec.formation != nil && rec.formation.Locked {
		return formation.State{}, ErrFormationLocked
	}
	state, err := formation.Build(payload, rec.shop.Bench)
	if err != nil {
		return formation.State{}, err
	}
	rec.formation = &state
	return state, nil
}

// SetLocked freezes or releases the user's saved formation. The arena calls
// this at match formation and teardown; no-op when nothing is saved.
func (s *Store) SetLocked(userID string, locked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[userID]
	if !ok || rec.formation == nil {
		return
	}
	if locked {
		st := formation.Lock(*rec.formation)
		rec.formation = &st
		return
	}
	rec.formation.Locked = false
}

// Formation returns the user's saved formation snapshot, if any. Safe to call
// from the arena's timer callbacks.
func (s *Store) Formation(userID string) (formation.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[userID]
	if !ok || rec.formation == nil {
		return formation.State{}, false
	}
	return *rec.formation, true
}
