package strategy

import (
	rand "math/rand/v2"

	"github.com/lox/rps-cli/internal/game"
)

// Random ignores history and throws uniformly at random
type Random struct {
	rng *rand.Rand
}

// NewRandom creates the uniform-random strategy
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) NextChoice(history []game.Choice) game.Choice {
	return game.Choices[r.rng.IntN(len(game.Choices))]
}
