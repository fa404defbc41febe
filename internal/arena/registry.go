package arena

import (
	"sync"

	"github.com/google/uuid"
)

// Starting stats for a fresh account.
const (
	startingHP    = 30
	startingCoins = 10
	startingMMR   = 1000
)

// Registry owns every live User record. All mutation goes through its methods
// so updates stay atomic; callers only ever see copies.
type Registry struct {
	mu           sync.Mutex
	byID         map[string]*User
	usernameToID map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		byID:         map[string]*User{},
		usernameToID: map[string]string{},
	}
}

// GetOrCreate returns the user for a username, creating the record on first
// login. Exactly one record exists per logical account for the process
// lifetime.
func (r *Registry) GetOrCreate(username string) User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.usernameToID[username]; ok {
		if u, ok := r.byID[id]; ok {
			return *u
		}
	}
	u := &User{
		ID:       uuid.NewString(),
		Username: username,
		HP:       startingHP,
		Coins:    startingCoins,
		MMR:      startingMMR,
	}
	r.byID[u.ID] = u
	r.usernameToID[username] = u.ID
	return *u
}

// Get looks a user up by id.
func (r *Registry) Get(id string) (User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		return *u, true
	}
	return User{}, false
}

// ResetHP restores a user's hp to the starting value. Runs at match formation
// so every match starts from full health.
func (r *Registry) ResetHP(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return false
	}
	u.HP = startingHP
	return true
}

// ApplyDamage reduces a user's hp, clamped at 0, and returns the new value.
func (r *Registry) ApplyDamage(id string, damage int) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return 0, false
	}
	u.HP -= damage
	if u.HP < 0 {
		u.HP = 0
	}
	return u.HP, true
}

// AddRewards credits coins and xp after a won round.
func (r *Registry) AddRewards(id string, coins, xp int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return false
	}
	u.Coins += coins
	u.XP += xp
	return true
}
