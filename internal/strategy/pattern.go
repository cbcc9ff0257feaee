package strategy

import (
	rand "math/rand/v2"

	"github.com/lox/rps-cli/internal/game"
)

// patternWindows are the trailing sequence lengths Pattern tries, longest
// first. Longer windows give more specific predictions when they recur.
var patternWindows = []int{2, 1}

// Pattern predicts the human's next throw from recurring short sequences.
// It scans history for earlier occurrences of the last two throws, then
// the last one, and beats whichever choice most often followed; frequency
// ties go to enumeration order. When the history is too short or the
// trailing sequence has never recurred it degrades to Counter behavior,
// which in turn degrades to random on empty history.
type Pattern struct {
	counter *Counter
}

// NewPattern creates the pattern-predictor strategy
func NewPattern(rng *rand.Rand) *Pattern {
	return &Pattern{counter: NewCounter(rng)}
}

func (p *Pattern) NextChoice(history []game.Choice) game.Choice {
	for _, window := range patternWindows {
		if predicted, ok := predictNext(history, window); ok {
			return predicted.CounterTo()
		}
	}
	return p.counter.NextChoice(history)
}

// predictNext looks for earlier occurrences of the trailing window of
// history and tallies the choice that followed each one. It reports false
// when the history is shorter than window+1 or the trailing sequence never
// occurred before with a follower.
func predictNext(history []game.Choice, window int) (game.Choice, bool) {
	if len(history) < window+1 {
		return 0, false
	}
	suffix := history[len(history)-window:]

	var counts [len(game.Choices)]int
	found := false
	for i := 0; i+window < len(history); i++ {
		if !equalChoices(history[i:i+window], suffix) {
			continue
		}
		counts[history[i+window]]++
		found = true
	}
	if !found {
		return 0, false
	}

	best := game.Choices[0]
	for _, c := range game.Choices[1:] {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best, true
}

func equalChoices(a, b []game.Choice) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
