package game

// Outcome is the result of a round, always scored from the human player's
// perspective.
type Outcome int

const (
	Win Outcome = iota
	Loss
	Tie
)

// String returns the display name of an outcome
func (o Outcome) String() string {
	switch o {
	case Win:
		return "Win"
	case Loss:
		return "Loss"
	case Tie:
		return "Tie"
	default:
		return "?"
	}
}

// Invert returns the same outcome seen from the other seat. Win and Loss
// swap; Tie is its own inverse.
func (o Outcome) Invert() Outcome {
	switch o {
	case Win:
		return Loss
	case Loss:
		return Win
	default:
		return Tie
	}
}

// Resolve scores a round from the human player's perspective. It is total
// over all choice pairs: identical choices tie, otherwise exactly one side
// beats the other.
func Resolve(human, computer Choice) Outcome {
	switch {
	case human == computer:
		return Tie
	case human.Beats(computer):
		return Win
	default:
		return Loss
	}
}
