// Package strategy implements the computer opponent's decision-makers and
// the difficulty factory that selects between them.
//
// All strategies satisfy game.Agent. They read the human's choice history
// but never mutate it, and they always produce a valid choice regardless
// of how little history exists.
package strategy

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/lox/rps-cli/internal/game"
)

// Difficulties lists the accepted difficulty levels in ascending order of
// opponent sophistication.
func Difficulties() []string {
	return []string{"easy", "medium", "hard"}
}

// New maps a difficulty level to its strategy: easy plays randomly, medium
// counters the human's most frequent choice, hard predicts from recurring
// patterns. Unknown levels are an error, never a silent default.
func New(difficulty string, rng *rand.Rand) (game.Agent, error) {
	switch strings.ToLower(difficulty) {
	case "easy":
		return NewRandom(rng), nil
	case "medium":
		return NewCounter(rng), nil
	case "hard":
		return NewPattern(rng), nil
	default:
		return nil, fmt.Errorf("%w: unknown difficulty %q", game.ErrInvalidConfiguration, difficulty)
	}
}
