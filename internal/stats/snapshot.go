package stats

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lox/rps-cli/internal/game"
)

// ErrFormat indicates a structurally invalid snapshot: missing required
// fields, wrong types, negative counters, unknown choice tokens, or
// counters that disagree with each other. Callers may recover by starting
// from empty stats, but the error itself is never swallowed here.
var ErrFormat = errors.New("malformed snapshot")

// Snapshot is the wire form of a Tracker. History entries use the fixed
// lowercase tokens "rock", "paper" and "scissors".
type Snapshot struct {
	Wins       int      `json:"wins"`
	Losses     int      `json:"losses"`
	Ties       int      `json:"ties"`
	TotalGames int      `json:"total_games"`
	History    []string `json:"history"`
}

// snapshotWire mirrors Snapshot with pointer fields so decoding can tell
// an absent counter from a zero one.
type snapshotWire struct {
	Wins       *int     `json:"wins"`
	Losses     *int     `json:"losses"`
	Ties       *int     `json:"ties"`
	TotalGames *int     `json:"total_games"`
	History    []string `json:"history"`
}

// Snapshot returns the tracker's persistable state
func (t *Tracker) Snapshot() Snapshot {
	history := make([]string, len(t.history))
	for i, c := range t.history {
		history[i] = c.Token()
	}
	return Snapshot{
		Wins:       t.wins,
		Losses:     t.losses,
		Ties:       t.ties,
		TotalGames: t.TotalGames(),
		History:    history,
	}
}

// EncodeSnapshot serializes a tracker as indented JSON
func EncodeSnapshot(t *Tracker) ([]byte, error) {
	return json.MarshalIndent(t.Snapshot(), "", "  ")
}

// DecodeSnapshot restores a tracker from snapshot bytes. The counter
// fields are required; history and total_games are optional but must be
// consistent with the counters when present. An absent history restores
// counters only.
func DecodeSnapshot(data []byte) (*Tracker, error) {
	var w snapshotWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	if w.Wins == nil || w.Losses == nil || w.Ties == nil {
		return nil, fmt.Errorf("%w: missing required counter field", ErrFormat)
	}
	if *w.Wins < 0 || *w.Losses < 0 || *w.Ties < 0 {
		return nil, fmt.Errorf("%w: negative counter", ErrFormat)
	}

	total := *w.Wins + *w.Losses + *w.Ties
	if w.TotalGames != nil && *w.TotalGames != total {
		return nil, fmt.Errorf("%w: total_games %d does not match counters (%d)",
			ErrFormat, *w.TotalGames, total)
	}
	if w.History != nil && len(w.History) != total {
		return nil, fmt.Errorf("%w: history length %d does not match counters (%d)",
			ErrFormat, len(w.History), total)
	}

	t := &Tracker{wins: *w.Wins, losses: *w.Losses, ties: *w.Ties}
	for i, token := range w.History {
		choice, err := game.ParseChoice(token)
		if err != nil {
			return nil, fmt.Errorf("%w: bad history token %q at index %d", ErrFormat, token, i)
		}
		t.history = append(t.history, choice)
	}
	return t, nil
}
