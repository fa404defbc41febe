package stats

// Reset clears the current day's bests without changing the date. Intended for
// tests and dev convenience.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = Daily{Date: t.state.Date}
}
