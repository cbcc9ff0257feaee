package game

// Agent represents any entity that can choose the computer's next throw.
// Agents receive the human's past choices in chronological order and must
// not modify the slice. Implementations are expected to be deterministic
// for identical history, apart from explicit random fallbacks, and must
// always return a valid choice no matter how short the history is.
type Agent interface {
	NextChoice(history []Choice) Choice
}

// Recorder accumulates round results. The match controller is the only
// writer; agents observe history through it read-only.
type Recorder interface {
	// Record appends the human choice to history and tallies the outcome.
	Record(outcome Outcome, human Choice)

	// History returns the human's past choices in chronological order.
	History() []Choice
}
