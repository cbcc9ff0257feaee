// Package stats tracks per-session results and persists them as JSON
// snapshots.
package stats

import (
	"github.com/lox/rps-cli/internal/game"
)

// Tracker accumulates win/loss/tie counts and the ordered sequence of the
// human's choices. Record is the only mutator; counters and history always
// move together, so wins+losses+ties equals the number of recorded rounds.
type Tracker struct {
	wins    int
	losses  int
	ties    int
	history []game.Choice
}

// NewTracker returns an empty tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record appends the human choice to history and tallies the outcome
func (t *Tracker) Record(outcome game.Outcome, human game.Choice) {
	t.history = append(t.history, human)
	switch outcome {
	case game.Win:
		t.wins++
	case game.Loss:
		t.losses++
	case game.Tie:
		t.ties++
	}
}

// Wins returns the number of rounds the human won
func (t *Tracker) Wins() int { return t.wins }

// Losses returns the number of rounds the human lost
func (t *Tracker) Losses() int { return t.losses }

// Ties returns the number of tied rounds
func (t *Tracker) Ties() int { return t.ties }

// TotalGames returns the number of recorded rounds
func (t *Tracker) TotalGames() int {
	return t.wins + t.losses + t.ties
}

// History returns the human's past choices in chronological order. The
// slice is shared with the tracker; callers must treat it as read-only.
func (t *Tracker) History() []game.Choice {
	return t.history
}

// WinRate returns the win percentage in [0,100], 0 when no games have
// been played.
func (t *Tracker) WinRate() float64 {
	total := t.TotalGames()
	if total == 0 {
		return 0
	}
	return float64(t.wins) / float64(total) * 100
}
