package strategy

import (
	rand "math/rand/v2"

	"github.com/lox/rps-cli/internal/game"
)

// Counter beats the human's most frequent past choice. Frequency ties go
// to whichever choice enumerates first, so identical history always yields
// the identical throw. With no history it falls back to random play.
type Counter struct {
	fallback *Random
}

// NewCounter creates the frequency-counter strategy
func NewCounter(rng *rand.Rand) *Counter {
	return &Counter{fallback: NewRandom(rng)}
}

func (c *Counter) NextChoice(history []game.Choice) game.Choice {
	if len(history) == 0 {
		return c.fallback.NextChoice(history)
	}
	return mostFrequent(history).CounterTo()
}

// mostFrequent returns the choice appearing most often in history, ties
// broken by enumeration order.
func mostFrequent(history []game.Choice) game.Choice {
	var counts [len(game.Choices)]int
	for _, c := range history {
		counts[c]++
	}
	best := game.Choices[0]
	for _, c := range game.Choices[1:] {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best
}
