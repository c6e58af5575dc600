// Package viewstate guards a view's local state against late responses:
// every fetch takes a token and only the newest token may apply its result.
package viewstate

import "sync"

type Token uint64

// Tracker hands out request tokens for one view.
type Tracker struct {
	mu      sync.Mutex
	current Token
}

// Begin starts a new request and supersedes any request still in flight.
func (t *Tracker) Begin() Token {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current++
	return t.current
}

// Current reports whether tok is still the newest token.
func (t *Tracker) Current(tok Token) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tok == t.current
}

// Apply runs fn only when tok is still current, under the tracker lock so a
// newer Begin cannot slip in between the check and the update.
func (t *Tracker) Apply(tok Token, fn func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if tok != t.current {
		return false
	}
	fn()
	return true
}
