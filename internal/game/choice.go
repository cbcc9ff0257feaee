package game

import (
	"fmt"
	"strings"
)

// Choice represents a throw in rock-paper-scissors
type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
)

// Choices lists every throw in enumeration order. Deterministic tie-breaks
// elsewhere in the codebase rely on this ordering.
var Choices = [3]Choice{Rock, Paper, Scissors}

// String returns the display name of a choice
func (c Choice) String() string {
	switch c {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "?"
	}
}

// Token returns the lowercase identifier used in persisted snapshots
func (c Choice) Token() string {
	switch c {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "?"
	}
}

// Beats reports whether c defeats other. The relation is cyclic: rock
// beats scissors, scissors beats paper, paper beats rock. A choice never
// beats itself.
func (c Choice) Beats(other Choice) bool {
	switch c {
	case Rock:
		return other == Scissors
	case Paper:
		return other == Rock
	case Scissors:
		return other == Paper
	default:
		return false
	}
}

// CounterTo returns the choice that beats c
func (c Choice) CounterTo() Choice {
	switch c {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	default:
		return Rock
	}
}

// ParseChoice maps a user token to a Choice. Full names and single-letter
// abbreviations are accepted, case-insensitively. Anything else returns an
// error matching ErrInvalidInput.
func ParseChoice(token string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "r", "rock":
		return Rock, nil
	case "p", "paper":
		return Paper, nil
	case "s", "scissors":
		return Scissors, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized choice %q", ErrInvalidInput, token)
	}
}
